package money

import (
	"github.com/shopspring/decimal"
)

// CentsPrecision is the number of fractional digits shown for amounts.
const CentsPrecision = 2

// FormatCents formats an amount with exactly two fractional digits.
// Example: 125.5 returns "125.50", 12.345 returns "12.35".
func FormatCents(amount decimal.Decimal) string {
	return amount.StringFixed(CentsPrecision)
}

// FormatSigned renders a magnitude with its direction applied, for display only.
func FormatSigned(magnitude decimal.Decimal, negative bool) string {
	if negative && !magnitude.IsZero() {
		return magnitude.Neg().StringFixed(CentsPrecision)
	}
	return magnitude.StringFixed(CentsPrecision)
}
