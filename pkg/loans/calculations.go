// Package loans provides the amortization math for fixed-rate and
// adjustable-rate mortgages: the level-payment formula, the per-period
// balance recurrence and the multi-segment adjustable schedule built on them.
//
// Every function here is a pure computation over its arguments. Schedules are
// allocated per call and never shared, so concurrent use needs no
// coordination.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// ErrInvalidInput is wrapped by every error returned for inputs outside the
// domain of the amortization formulas. Nothing is computed when it is returned.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// CalculateMonthlyPayment calculates the level periodic payment that fully
// amortizes principal over periods payments at periodicRate per period.
// A zero rate falls back to straight-line division.
func CalculateMonthlyPayment(principal, periodicRate float64, periods int) (float64, error) {
	if !mathutil.IsFinite(principal) || principal <= 0 {
		return 0, invalidInput("principal must be positive, got %v", principal)
	}
	if err := checkPeriodicRate(periodicRate); err != nil {
		return 0, err
	}
	if periods <= 0 {
		return 0, invalidInput("period count must be positive, got %d", periods)
	}
	return levelPayment(principal, periodicRate, periods), nil
}

// levelPayment is the unchecked annuity formula. Adjustable schedules call it
// directly because a carried balance may legitimately sit at or just below
// zero once an earlier segment has paid the loan off.
func levelPayment(principal, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	power := math.Pow(1+periodicRate, float64(periods))
	return principal * (periodicRate * power) / (power - 1)
}

// CalculateInterestPayment calculates the interest portion accrued on the
// remaining balance for a single period.
func CalculateInterestPayment(remainingBalance, periodicRate float64) float64 {
	return remainingBalance * periodicRate
}

// PeriodicRate converts an annual percentage rate, e.g. 5.0, into the
// monthly periodic rate used by the formulas.
func PeriodicRate(annualRatePercent float64) (float64, error) {
	if !mathutil.IsFinite(annualRatePercent) || annualRatePercent < 0 {
		return 0, invalidInput("interest rate must be a non-negative percentage, got %v", annualRatePercent)
	}
	return mathutil.PercentToPeriodicRate(annualRatePercent), nil
}

// TermPeriods converts a term in whole years into a number of monthly payments.
func TermPeriods(years int) (int, error) {
	if years < 1 {
		return 0, invalidInput("term must be at least 1 year, got %d", years)
	}
	if years > constants.MaxTermYears {
		return 0, invalidInput("term must not exceed %d years, got %d", constants.MaxTermYears, years)
	}
	return years * constants.MonthsPerYear, nil
}

// LoanAmount returns the financed amount for a purchase. The deposit must be
// non-negative and strictly below the home value.
func LoanAmount(homeValue, deposit float64) (float64, error) {
	if !mathutil.IsFinite(homeValue) || !mathutil.IsFinite(deposit) {
		return 0, invalidInput("home value and deposit must be finite numbers")
	}
	if deposit < 0 {
		return 0, invalidInput("deposit must not be negative, got %v", deposit)
	}
	if homeValue <= deposit {
		return 0, invalidInput("deposit cannot exceed or equal home value (%.2f >= %.2f)", deposit, homeValue)
	}
	return homeValue - deposit, nil
}

func checkPeriodicRate(periodicRate float64) error {
	if !mathutil.IsFinite(periodicRate) || periodicRate < 0 {
		return invalidInput("periodic rate must be non-negative, got %v", periodicRate)
	}
	return nil
}
