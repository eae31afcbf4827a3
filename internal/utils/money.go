package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Monetary values are displayed the way the mobile app always has:
// Brazilian Portuguese grouping with the R$ prefix.
var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a value in reais, e.g. 1234.5 -> "R$ 1.234,50".
func FormatBRL(value float64) string {
	return brlPrinter.Sprintf("R$ %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
