package document

const cepLength = 8

// FormatCEP renders a complete postal code as XXXXX-XXX. Input without exactly eight
// digits is returned with its non-digits stripped.
func FormatCEP(cep string) string {
	cep = digitsOnly(cep)
	if len(cep) != cepLength {
		return cep
	}
	return cep[:5] + "-" + cep[5:]
}

// FormatCEPInput masks a partially typed postal code. The dash appears with the sixth
// digit and input stops at eight digits.
func FormatCEPInput(value string) string {
	if value == "" {
		return ""
	}
	digits := digitsOnly(value)
	if len(digits) > cepLength {
		digits = digits[:cepLength]
	}
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}

// IsValidCEPFormat reports whether raw holds exactly eight digits once punctuation is
// removed. It says nothing about whether the postal code exists.
func IsValidCEPFormat(raw string) bool {
	return raw != "" && len(digitsOnly(raw)) == cepLength
}
