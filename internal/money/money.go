// Package money renders monetary amounts for display. Amounts are
// rounded half away from zero to 2 decimal places before locale
// formatting; the arithmetic engine itself never rounds.
package money

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// locales maps each supported currency code to its display locale.
// Unrecognized codes fall back to USD in en-US.
var locales = map[string]language.Tag{
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"CAD": language.MustParse("en-CA"),
	"PKR": language.MustParse("en-PK"),
}

// SupportedCurrencies lists the currency codes offered in settings.
func SupportedCurrencies() []string {
	return []string{"USD", "EUR", "GBP", "CAD", "PKR"}
}

// Format renders amount in the locale associated with code.
func Format(amount float64, code string) string {
	tag, ok := locales[code]
	unit, err := currency.ParseISO(code)
	if !ok || err != nil {
		tag = language.AmericanEnglish
		unit = currency.USD
	}

	rounded := math.Round(amount*100) / 100
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(rounded)))
}
