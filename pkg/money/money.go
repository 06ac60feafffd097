// Package money converts integer cent amounts to decimal dollars for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Dollars converts cents to a decimal dollar amount.
func Dollars(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

// Cents converts whole dollars to cents.
func Cents(dollars int64) int64 {
	return dollars * 100
}

// Format renders cents as "$1234.56". Negative amounts render as "-$12.00".
func Format(cents int64) string {
	amount := Dollars(cents)
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatGrouped renders cents with thousands separators, e.g. "$12,345.60".
func FormatGrouped(cents int64) string {
	amount := Dollars(cents)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}
