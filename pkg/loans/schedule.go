package loans

import (
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// Payment holds the values for a given period of an amortization schedule.
type Payment struct {
	Period           int     `json:"period" yaml:"period"`
	Payment          float64 `json:"payment" yaml:"payment"`
	Principal        float64 `json:"principal" yaml:"principal"`
	Interest         float64 `json:"interest" yaml:"interest"`
	RemainingBalance float64 `json:"remainingBalance" yaml:"remainingBalance"`
	Year             int     `json:"year" yaml:"year"`
	Segment          int     `json:"segment" yaml:"segment"`
	Date             string  `json:"date,omitempty" yaml:"date,omitempty"` // YYYY-MM, set when a start date is configured
}

// Schedule is an amortization schedule ordered by period.
type Schedule []Payment

// GenerateSchedule produces periods rows starting from startingBalance, each
// paying payment at periodicRate. Rows are numbered from startPeriod so that a
// schedule can continue an earlier one.
//
// The recurrence is applied as-is: a payment smaller than the interest due
// grows the balance.
func GenerateSchedule(startingBalance, payment, periodicRate float64, periods, startPeriod int) (Schedule, error) {
	if !mathutil.IsFinite(startingBalance) || startingBalance < 0 {
		return nil, invalidInput("starting balance must not be negative, got %v", startingBalance)
	}
	if !mathutil.IsFinite(payment) {
		return nil, invalidInput("payment must be a finite number, got %v", payment)
	}
	if err := checkPeriodicRate(periodicRate); err != nil {
		return nil, err
	}
	if periods <= 0 {
		return nil, invalidInput("period count must be positive, got %d", periods)
	}
	if startPeriod < 1 {
		return nil, invalidInput("starting period must be at least 1, got %d", startPeriod)
	}

	schedule := make(Schedule, 0, periods)
	return appendSegment(schedule, startingBalance, payment, periodicRate, periods, startPeriod, 1), nil
}

// appendSegment folds the balance forward over periods rows and appends them
// to schedule.
func appendSegment(schedule Schedule, balance, payment, periodicRate float64, periods, startPeriod, segment int) Schedule {
	for i := 0; i < periods; i++ {
		period := startPeriod + i
		interest := CalculateInterestPayment(balance, periodicRate)
		principal := payment - interest
		balance -= principal
		schedule = append(schedule, Payment{
			Period:           period,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
			Year:             YearOf(period),
			Segment:          segment,
		})
	}
	return schedule
}

// YearOf returns the 1-based loan year a period falls into.
func YearOf(period int) int {
	return mathutil.CeilDiv(period, constants.MonthsPerYear)
}

// FixedSchedule computes the full schedule of a fixed-rate mortgage.
func FixedSchedule(homeValue, deposit, annualRatePercent float64, termYears int) (Schedule, error) {
	loanAmount, err := LoanAmount(homeValue, deposit)
	if err != nil {
		return nil, err
	}
	periodicRate, err := PeriodicRate(annualRatePercent)
	if err != nil {
		return nil, err
	}
	periods, err := TermPeriods(termYears)
	if err != nil {
		return nil, err
	}

	payment, err := CalculateMonthlyPayment(loanAmount, periodicRate, periods)
	if err != nil {
		return nil, err
	}
	return GenerateSchedule(loanAmount, payment, periodicRate, periods, 1)
}
