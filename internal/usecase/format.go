package usecase

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

// displayDateLayout renders dates as "1 June 2025".
const displayDateLayout = "2 January 2006"

// pricePrinter groups digits the Indian way: last three, then pairs (1,23,45,678).
var pricePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders an amount in rupees with Indian digit grouping, e.g. ₹1,23,456.5.
// At most two fraction digits are kept and trailing zeros are dropped.
func FormatPrice(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	amount = math.Round(amount*100) / 100
	if amount == 0 {
		amount = 0 // drops the sign of -0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + CurrencySymbol + pricePrinter.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatPriceText is FormatPrice over a textual price (unparseable = 0).
func FormatPriceText(price string) string {
	return FormatPrice(domain.ParsePrice(price))
}

// FormatDate renders a wire date for display; blank or unreadable input yields "".
func FormatDate(date string) string {
	t, ok := domain.ParseDate(date)
	if !ok {
		return ""
	}
	return t.Format(displayDateLayout)
}
