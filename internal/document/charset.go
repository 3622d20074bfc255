package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isUpperLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isAlphanumeric(c byte) bool { return isDigit(c) || isUpperLetter(c) }

// isSeparator reports the punctuation users type between document groups.
func isSeparator(r rune) bool {
	return r == '.' || r == '-' || r == '/' || unicode.IsSpace(r)
}

func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// digitsOnly drops every rune that is not an ASCII digit.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// keep filters s down to the bytes accepted by pred. Only ASCII bytes can pass.
func keep(s string, pred func(byte) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf && pred(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// clean removes separators and upper-cases ASCII letters, leaving any other rune alone.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSeparator(r) {
			continue
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if isUpperLetter(s[i]) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// runeLen is the length the user sees, which is what the length rules count.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
