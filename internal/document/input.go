package document

import "strings"

// Input formatters run on every keystroke. They only punctuate what has been typed so
// far, never reject input, and give the same answer when fed their own output.

// mask writes s split into groups of the given sizes, placing seps[i] before group
// i+1. Groups past the end of s are skipped, and the last group absorbs nothing extra:
// callers truncate s beforehand.
func mask(s string, sizes []int, seps []string) string {
	var b strings.Builder
	b.Grow(len(s) + len(seps))
	pos := 0
	for i, size := range sizes {
		if pos >= len(s) {
			break
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		end := min(pos+size, len(s))
		b.WriteString(s[pos:end])
		pos = end
	}
	return b.String()
}

var (
	cpfGroups  = []int{3, 3, 3, 2}
	cpfSeps    = []string{".", ".", "-"}
	cnpjGroups = []int{2, 3, 3, 4, 2}
	cnpjSeps   = []string{".", ".", "/", "-"}
)

// FormatCPFInput masks a partially typed CPF: "1234567" becomes "123.456.7".
func FormatCPFInput(value string) string {
	if value == "" {
		return ""
	}
	digits := digitsOnly(value)
	if len(digits) > cpfLength {
		digits = digits[:cpfLength]
	}
	return mask(digits, cpfGroups, cpfSeps)
}

// FormatCNPJInput masks a partially typed CNPJ in either scheme. Once a letter shows up,
// letters are kept in the twelve-character base while the check-digit tail stays numeric.
func FormatCNPJInput(value string) string {
	if value == "" {
		return ""
	}
	full := clean(value)
	cleaned := truncate(full, cnpjLength)

	if !hasLetter(cleaned) {
		digits := digitsOnly(full)
		if len(digits) > cnpjLength {
			digits = digits[:cnpjLength]
		}
		return mask(digits, cnpjGroups, cnpjSeps)
	}

	head, tail := cleaned, ""
	if runeLen(cleaned) > cnpjBaseLength {
		head = truncate(cleaned, cnpjBaseLength)
		tail = cleaned[len(head):]
	}
	combined := keep(head, isAlphanumeric) + digitsOnly(tail)
	return mask(combined, cnpjGroups, cnpjSeps)
}

// FormatDocumentInput masks a CPF or CNPJ as it is typed. The mask switches to CNPJ as
// soon as a letter appears or the twelfth digit is entered.
func FormatDocumentInput(value string) string {
	if value == "" {
		return ""
	}
	cleaned := clean(value)
	if hasLetter(cleaned) {
		formatted := FormatCNPJInput(value)
		// Letters typed into the check-digit slots are dropped, which can leave a short
		// all-digit value that belongs under the CPF mask.
		if !hasLetter(formatted) && len(digitsOnly(formatted)) <= cpfLength {
			return FormatCPFInput(formatted)
		}
		return formatted
	}
	if len(digitsOnly(cleaned)) <= cpfLength {
		return FormatCPFInput(value)
	}
	return FormatCNPJInput(value)
}
