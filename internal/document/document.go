package document

const (
	msgAlphanumericCNPJLength = "CNPJ alfanumérico deve ter 14 caracteres"
	msgDocumentLength         = "Documento deve ter 11 dígitos (CPF) ou 14 caracteres (CNPJ)"
)

// ValidateDocument validates a CPF or CNPJ without being told which one it is. Any letter
// makes it an alphanumeric CNPJ; otherwise the digit count decides.
func ValidateDocument(raw string) Result {
	cleaned := clean(raw)
	if hasLetter(cleaned) {
		if runeLen(cleaned) != cnpjLength {
			return invalid(KindCNPJ, ReasonLength, msgAlphanumericCNPJLength)
		}
		return ValidateCNPJ(raw)
	}

	switch len(digitsOnly(cleaned)) {
	case cpfLength:
		return ValidateCPF(raw)
	case cnpjLength:
		return ValidateCNPJ(raw)
	default:
		return invalid(KindUnknown, ReasonAmbiguous, msgDocumentLength)
	}
}

// Validate runs the validator for kind, falling back to ValidateDocument when the kind
// is unknown.
func Validate(kind Kind, raw string) Result {
	switch kind {
	case KindCPF:
		return ValidateCPF(raw)
	case KindCNPJ:
		return ValidateCNPJ(raw)
	default:
		return ValidateDocument(raw)
	}
}

// DetectKind guesses which document the user is typing, using the same rule as
// FormatDocumentInput.
func DetectKind(raw string) Kind {
	cleaned := clean(raw)
	if hasLetter(cleaned) {
		return KindCNPJ
	}
	switch n := len(digitsOnly(cleaned)); {
	case n == 0:
		return KindUnknown
	case n <= cpfLength:
		return KindCPF
	default:
		return KindCNPJ
	}
}

// DetectScheme reports the CNPJ scheme a fourteen-character value would be checked
// against. Values of any other length yield SchemeNone.
func DetectScheme(raw string) Scheme {
	cleaned := clean(raw)
	if runeLen(cleaned) != cnpjLength {
		return SchemeNone
	}
	if allDigits(cleaned) {
		return SchemeLegacy
	}
	return SchemeAlphanumeric
}
