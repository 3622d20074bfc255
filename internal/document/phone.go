package document

const (
	phoneMinDigits = 10
	phoneMaxDigits = 11
)

// FormatPhoneInput masks a Brazilian phone number with area code as it is typed:
// "(11) 98765-4321". Digits past the eleventh are dropped.
func FormatPhoneInput(value string) string {
	digits := digitsOnly(value)
	if len(digits) > phoneMaxDigits {
		digits = digits[:phoneMaxDigits]
	}
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}

// IsValidPhone reports whether raw holds a landline (10 digits) or mobile (11 digits)
// number including the area code.
func IsValidPhone(raw string) bool {
	n := len(digitsOnly(raw))
	return n >= phoneMinDigits && n <= phoneMaxDigits
}
