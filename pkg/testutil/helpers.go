// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
)

// FindPeriod finds a row by its period number in the schedule.
// Returns a pointer to the row if found, nil otherwise.
func FindPeriod(schedule loans.Schedule, period int) *loans.Payment {
	for i := range schedule {
		if schedule[i].Period == period {
			return &schedule[i]
		}
	}
	return nil
}

// RowsInYear returns the rows whose payment falls in the given loan year.
func RowsInYear(schedule loans.Schedule, year int) loans.Schedule {
	var rows loans.Schedule
	for _, row := range schedule {
		if row.Year == year {
			rows = append(rows, row)
		}
	}
	return rows
}
