package document

import "strings"

const (
	creciMaxDigits = 10
	creciMaxSuffix = 4
)

func isCRECISuffix(c byte) bool { return isUpperLetter(c) || c == '-' }

// FormatCRECIInput masks a broker license as "digits/STATE". The number keeps at most ten
// digits; after the first slash only letters and dashes survive, four at most, as in
// "12345/SP" or "12345/SP-F".
func FormatCRECIInput(value string) string {
	if value == "" {
		return ""
	}
	upper := strings.ToUpper(value)

	number, suffix, found := strings.Cut(upper, "/")
	number = digitsOnly(number)
	if len(number) > creciMaxDigits {
		number = number[:creciMaxDigits]
	}
	if !found {
		return number
	}

	suffix = keep(suffix, isCRECISuffix)
	if len(suffix) > creciMaxSuffix {
		suffix = suffix[:creciMaxSuffix]
	}
	return number + "/" + suffix
}

// FormatCRECI renders a stored license number for contracts and receipts. Nine or more
// digits are grouped as XXXXX-XX/XX; shorter values are shown as they are.
func FormatCRECI(creci string) string {
	if creci == "" {
		return ""
	}
	digits := digitsOnly(creci)
	switch {
	case len(digits) >= 9:
		return digits[:5] + "-" + digits[5:7] + "/" + digits[7:9] + digits[9:]
	case len(digits) >= 5:
		return digits
	default:
		return creci
	}
}
