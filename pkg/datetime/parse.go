// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ValidateMonth checks that date is a YYYY-MM month.
func ValidateMonth(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM", date)
	}
	return nil
}

// PaymentDates returns the month of each of periods payments, the first one
// falling in startDate.
func PaymentDates(startDate string, periods int) ([]string, error) {
	start, err := time.Parse(DateTimeLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM", startDate)
	}

	dates := make([]string, periods)
	for i := range dates {
		dates[i] = start.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return dates, nil
}
