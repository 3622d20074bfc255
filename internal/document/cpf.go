package document

const (
	cpfLength = 11

	msgCPFLength      = "CPF deve ter 11 dígitos"
	msgCPFSequence    = "CPF inválido (sequência inválida)"
	msgCPFCheckDigits = "CPF inválido (dígitos verificadores incorretos)"
)

// ValidateCPF checks an individual taxpayer number. Every non-digit is ignored, so
// "111.444.777-35" and "11144477735" are equivalent.
func ValidateCPF(raw string) Result {
	cpf := digitsOnly(raw)
	if len(cpf) != cpfLength {
		return invalid(KindCPF, ReasonLength, msgCPFLength)
	}
	if allSame(cpf) {
		return invalid(KindCPF, ReasonRepeatedSequence, msgCPFSequence)
	}

	first, second := cpfDigits(cpf[:9])
	if int(cpf[9]-'0') != first || int(cpf[10]-'0') != second {
		return invalid(KindCPF, ReasonCheckDigits, msgCPFCheckDigits)
	}

	return valid(KindCPF, SchemeNone, FormatCPF(cpf), cpf)
}

// FormatCPF renders a complete CPF as XXX.XXX.XXX-XX. Input that does not hold exactly
// eleven digits is returned with its non-digits stripped.
func FormatCPF(cpf string) string {
	cpf = digitsOnly(cpf)
	if len(cpf) != cpfLength {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}
