// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateMortgageType checks if the mortgage type is fixed-rate or adjustable-rate.
func ValidateMortgageType(mortgageType string) error {
	if mortgageType != constants.MortgageTypeFixed && mortgageType != constants.MortgageTypeAdjustable {
		return fmt.Errorf("expected mortgage type of %s or %s, got %q",
			constants.MortgageTypeFixed, constants.MortgageTypeAdjustable, mortgageType)
	}
	return nil
}
