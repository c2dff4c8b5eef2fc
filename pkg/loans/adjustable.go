package loans

import "github.com/iwvelando/mortgage-calculator/pkg/constants"

// RateSegment is one rate period of an adjustable-rate mortgage.
type RateSegment struct {
	AnnualRatePercent float64 `json:"interestRate" yaml:"interestRate" mapstructure:"interestRate"`
	DurationYears     int     `json:"years" yaml:"years" mapstructure:"years"`
}

// Periods returns the number of monthly payments in the segment.
func (s RateSegment) Periods() int {
	periods, _ := TermPeriods(s.DurationYears)
	return periods
}

// ValidateSegments checks every segment before any row is computed.
func ValidateSegments(segments []RateSegment) error {
	if len(segments) == 0 {
		return invalidInput("at least one rate period is required")
	}
	totalYears := 0
	for i, segment := range segments {
		if _, err := PeriodicRate(segment.AnnualRatePercent); err != nil {
			return invalidInput("rate period %d: interest rate must be a non-negative percentage, got %v",
				i+1, segment.AnnualRatePercent)
		}
		if _, err := TermPeriods(segment.DurationYears); err != nil {
			return invalidInput("rate period %d: term must be between 1 and %d years, got %d",
				i+1, constants.MaxTermYears, segment.DurationYears)
		}
		totalYears += segment.DurationYears
		if totalYears > constants.MaxTermYears {
			return invalidInput("rate periods must not exceed %d years in total, got %d after rate period %d",
				constants.MaxTermYears, totalYears, i+1)
		}
	}
	return nil
}

// GenerateAdjustableSchedule computes the schedule of an adjustable-rate
// mortgage. At each rate period the payment is recomputed as a fresh level
// payment on the balance carried out of the previous period, over this
// period's own term. Period numbers and years run continuously across the
// whole loan.
func GenerateAdjustableSchedule(homeValue, deposit float64, segments []RateSegment) (Schedule, error) {
	loanAmount, err := LoanAmount(homeValue, deposit)
	if err != nil {
		return nil, err
	}
	if err := ValidateSegments(segments); err != nil {
		return nil, err
	}

	total := 0
	for _, segment := range segments {
		total += segment.Periods()
	}

	schedule := make(Schedule, 0, total)
	balance := loanAmount
	period := 1
	for i, segment := range segments {
		periodicRate, _ := PeriodicRate(segment.AnnualRatePercent)
		periods := segment.Periods()
		payment := levelPayment(balance, periodicRate, periods)

		schedule = appendSegment(schedule, balance, payment, periodicRate, periods, period, i+1)
		balance = schedule[len(schedule)-1].RemainingBalance
		period += periods
	}

	return schedule, nil
}
