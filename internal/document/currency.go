package document

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatBRL renders an amount in reais with pt-BR separators, e.g. "R$ 1.234,56".
// Amounts are rounded to the cent first.
func FormatBRL(amount float64) string {
	cents := math.Round(amount * 100)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + "R$ " + p.Sprint(number.Decimal(cents/100, number.Scale(2)))
}
