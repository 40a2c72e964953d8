package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way it appears in activity descriptions,
// e.g. 50000 -> "Rp 50.000" and 1234.5 -> "Rp 1.234,50".
func FormatRupiah(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	rounded := amount.Round(2)
	intPart := rounded.Truncate(0)
	frac := rounded.Sub(intPart)

	digits := intPart.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + sign + b.String()
	if !frac.IsZero() {
		out += "," + frac.Shift(2).StringFixed(0)
	}
	return out
}
