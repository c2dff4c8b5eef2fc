// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for display and logical comparisons only; schedules keep full precision.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within one cent)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// CeilDiv returns ceil(n / d) for positive integers.
func CeilDiv(n, d int) int {
	return (n + d - 1) / d
}

// PercentToPeriodicRate converts an annual percentage rate into a monthly
// periodic rate, e.g. 6.0 -> 0.005.
func PercentToPeriodicRate(annualPercent float64) float64 {
	return annualPercent / constants.PercentageMultiplier / constants.MonthsPerYear
}
