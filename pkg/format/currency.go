// Package format renders monetary amounts for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return currency(amount, 2, "$")
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$773,024").
func WholeCurrency(amount float64) string {
	return currency(amount, 0, "$")
}

// Fixed returns amount rounded half away from zero to places decimals,
// without separators (e.g., "-1234.56"). Used for machine-readable output.
func Fixed(amount float64, places int32) string {
	return normalizeZero(decimal.NewFromFloat(amount).Round(places)).StringFixed(places)
}

func currency(amount float64, places int32, symbol string) string {
	value := normalizeZero(decimal.NewFromFloat(amount).Round(places))
	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return sign + symbol + group(value.Abs().StringFixed(places))
}

// normalizeZero keeps values such as -0.001 from rendering as "-0.00".
func normalizeZero(value decimal.Decimal) decimal.Decimal {
	if value.IsZero() {
		return decimal.Zero
	}
	return value
}

func group(formatted string) string {
	intPart, decPart, hasDec := strings.Cut(formatted, ".")
	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}
	if !hasDec {
		return intPart
	}
	return intPart + "." + decPart
}
