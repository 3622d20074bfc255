package document

// Weights for the CNPJ check digits, shared by the legacy and 2026 schemes.
var (
	cnpjFirstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// mod11 turns a weighted sum into a check digit.
func mod11(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// charValue maps a CNPJ character to its checksum value: ASCII code minus 48 for
// digits and letters alike (IN RFB 2.229/2024), so 'A' is 17, not 10.
func charValue(c byte) int {
	if isAlphanumeric(c) {
		return int(c) - '0'
	}
	return 0
}

// cpfDigits computes both CPF check digits for a 9-digit base.
func cpfDigits(base string) (int, int) {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(base[i]-'0') * (10 - i)
	}
	first := mod11(sum)

	sum = 0
	for i := 0; i < 9; i++ {
		sum += int(base[i]-'0') * (11 - i)
	}
	sum += first * 2
	return first, mod11(sum)
}

// cnpjDigits computes both CNPJ check digits for a 12-character base. It serves both
// schemes because digits map to the same values under charValue.
func cnpjDigits(base string) (int, int) {
	sum := 0
	for i := 0; i < 12; i++ {
		sum += charValue(base[i]) * cnpjFirstWeights[i]
	}
	first := mod11(sum)

	sum = 0
	for i := 0; i < 12; i++ {
		sum += charValue(base[i]) * cnpjSecondWeights[i]
	}
	sum += first * cnpjSecondWeights[12]
	return first, mod11(sum)
}

// CPFCheckDigits returns the two check digits for a 9-digit CPF base. ok is false when
// base is not exactly nine digits.
func CPFCheckDigits(base string) (digits string, ok bool) {
	base = digitsOnly(base)
	if len(base) != 9 {
		return "", false
	}
	first, second := cpfDigits(base)
	return string([]byte{byte('0' + first), byte('0' + second)}), true
}

// CNPJCheckDigits returns the two check digits for a 12-character CNPJ base, numeric or
// alphanumeric. ok is false when base is not twelve characters of [A-Z0-9].
func CNPJCheckDigits(base string) (digits string, ok bool) {
	base = clean(base)
	if len(base) != 12 || keep(base, isAlphanumeric) != base {
		return "", false
	}
	first, second := cnpjDigits(base)
	return string([]byte{byte('0' + first), byte('0' + second)}), true
}
