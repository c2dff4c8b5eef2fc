// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
)

// MortgageValidator checks a mortgage for inputs that are valid but likely
// not what the user intended.
type MortgageValidator struct {
	Type     string
	Segments []loans.RateSegment
}

// ValidateTotalTerm warns when the combined term exceeds the usual maximum.
func ValidateTotalTerm(segments []loans.RateSegment) string {
	total := 0
	for _, segment := range segments {
		total += segment.DurationYears
	}
	if total > constants.LongTermWarningYears {
		return fmt.Sprintf("Total term of %d years exceeds %d years", total, constants.LongTermWarningYears)
	}
	return ""
}

// ValidateZeroRates warns about rate periods without interest.
func ValidateZeroRates(segments []loans.RateSegment) []string {
	var warnings []string
	for i, segment := range segments {
		if segment.AnnualRatePercent == 0 {
			warnings = append(warnings, fmt.Sprintf("Rate period %d has a 0%% interest rate - payments are principal only", i+1))
		}
	}
	return warnings
}

// ValidateAll validates the mortgage and returns warnings
func (mv *MortgageValidator) ValidateAll() []string {
	var warnings []string

	if warning := ValidateTotalTerm(mv.Segments); warning != "" {
		warnings = append(warnings, warning)
	}

	warnings = append(warnings, ValidateZeroRates(mv.Segments)...)

	if mv.Type == constants.MortgageTypeAdjustable {
		switch {
		case len(mv.Segments) == 1:
			warnings = append(warnings, "Adjustable mortgage has a single rate period - schedule is identical to a fixed-rate mortgage")
		case len(mv.Segments) > 1:
			// Every rate period is a fresh annuity over its own term, so the
			// first one already repays the loan.
			warnings = append(warnings, fmt.Sprintf(
				"Rate period 1 repays the full balance over its own %d years - rate periods 2-%d carry no remaining balance",
				mv.Segments[0].DurationYears, len(mv.Segments)))
		}
	}

	return warnings
}
