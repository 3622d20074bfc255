package document

const (
	cnpjLength     = 14
	cnpjBaseLength = 12

	msgCNPJLength             = "CNPJ deve ter 14 caracteres"
	msgCNPJSequence           = "CNPJ inválido (sequência inválida)"
	msgCNPJCheckDigits        = "CNPJ inválido (dígitos verificadores incorretos)"
	msgCNPJAlphanumericFormat = "CNPJ alfanumérico inválido (formato incorreto)"
	msgCNPJNumericCheckDigits = "CNPJ inválido (dígitos verificadores devem ser numéricos)"
	msgCNPJFirstCheckDigit    = "CNPJ inválido (primeiro dígito verificador incorreto)"
	msgCNPJSecondCheckDigit   = "CNPJ inválido (segundo dígito verificador incorreto)"
)

// ValidateCNPJ checks a company taxpayer number in either scheme. Dots, dashes, slashes
// and whitespace are ignored and letters are upper-cased; fourteen digits select the
// legacy algorithm, anything else the 2026 alphanumeric one.
func ValidateCNPJ(raw string) Result {
	cnpj := clean(raw)
	if runeLen(cnpj) != cnpjLength {
		return invalid(KindCNPJ, ReasonLength, msgCNPJLength)
	}
	if allDigits(cnpj) {
		return validateLegacyCNPJ(cnpj)
	}
	return validateAlphanumericCNPJ(cnpj)
}

func validateLegacyCNPJ(cnpj string) Result {
	if allSame(cnpj) {
		return invalid(KindCNPJ, ReasonRepeatedSequence, msgCNPJSequence)
	}

	first, second := cnpjDigits(cnpj[:cnpjBaseLength])
	if int(cnpj[12]-'0') != first || int(cnpj[13]-'0') != second {
		return invalid(KindCNPJ, ReasonCheckDigits, msgCNPJCheckDigits)
	}

	return valid(KindCNPJ, SchemeLegacy, FormatCNPJ(cnpj), cnpj)
}

// validateAlphanumericCNPJ expects fourteen runes; the base may hold letters but the
// check digits never do.
func validateAlphanumericCNPJ(cnpj string) Result {
	runes := []rune(cnpj)
	base, check := runes[:cnpjBaseLength], runes[cnpjBaseLength:]

	for _, r := range base {
		if r > 'Z' || !isAlphanumeric(byte(r)) {
			return invalid(KindCNPJ, ReasonCharset, msgCNPJAlphanumericFormat)
		}
	}
	for _, r := range check {
		if r > '9' || !isDigit(byte(r)) {
			return invalid(KindCNPJ, ReasonCharset, msgCNPJNumericCheckDigits)
		}
	}

	// Only ASCII is left, so byte offsets match rune offsets from here on.
	first, second := cnpjDigits(cnpj[:cnpjBaseLength])
	if int(cnpj[12]-'0') != first {
		return invalid(KindCNPJ, ReasonCheckDigits, msgCNPJFirstCheckDigit)
	}
	if int(cnpj[13]-'0') != second {
		return invalid(KindCNPJ, ReasonCheckDigits, msgCNPJSecondCheckDigit)
	}

	return valid(KindCNPJ, SchemeAlphanumeric, FormatAlphanumericCNPJ(cnpj), cnpj)
}

// FormatCNPJ renders a complete numeric CNPJ as XX.XXX.XXX/XXXX-XX. Input that does not
// hold exactly fourteen digits is returned with its non-digits stripped.
func FormatCNPJ(cnpj string) string {
	cnpj = digitsOnly(cnpj)
	if len(cnpj) != cnpjLength {
		return cnpj
	}
	return groupCNPJ(cnpj)
}

// FormatAlphanumericCNPJ renders a complete fourteen-character CNPJ, letters included.
// Anything of another length comes back untouched.
func FormatAlphanumericCNPJ(cnpj string) string {
	cleaned := clean(cnpj)
	if len(cleaned) != cnpjLength || runeLen(cleaned) != cnpjLength {
		return cnpj
	}
	return groupCNPJ(cleaned)
}

func groupCNPJ(s string) string {
	return s[:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:]
}
