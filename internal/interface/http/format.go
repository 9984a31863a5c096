package http

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencyPrefix = "KShs. "

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount with en-US digit grouping and exactly two
// fraction digits, rounding half away from zero.
func FormatPrice(amount decimal.Decimal) string {
	rounded := amount.Round(2).InexactFloat64()
	return currencyPrefix + pricePrinter.Sprint(number.Decimal(rounded, number.Scale(2)))
}
