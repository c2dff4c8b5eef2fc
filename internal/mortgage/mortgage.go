// Package mortgage turns a configured mortgage into a computed amortization
// result: the full schedule plus the totals and series derived from it.
package mortgage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/datetime"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// Result holds all information related to a computed mortgage.
type Result struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Segments   []loans.RateSegment `json:"segments"`
	Summary    loans.Summary       `json:"summary"`
	Schedule   loans.Schedule      `json:"rows"`
	Yearly     []loans.YearBalance `json:"yearly"`
	Boundaries []int               `json:"boundaries"`
}

// Calculator computes mortgage results and logs what it does.
type Calculator struct {
	logger *zap.Logger
	newID  func() string
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

// Calculate validates m and computes its schedule. Nothing is returned
// unless the whole schedule could be computed.
func (c *Calculator) Calculate(m config.Mortgage) (*Result, error) {
	start := time.Now()
	m.Normalize()

	if err := m.Validate(); err != nil {
		c.logger.Debug("rejected mortgage inputs",
			zap.String("op", "mortgage.Calculate"),
			zap.Error(err),
		)
		return nil, err
	}

	loanAmount, err := m.LoanAmount()
	if err != nil {
		return nil, err
	}

	var schedule loans.Schedule
	switch m.Type {
	case constants.MortgageTypeFixed:
		schedule, err = loans.FixedSchedule(m.HomeValue, m.Deposit, m.InterestRate, m.TermYears)
	case constants.MortgageTypeAdjustable:
		schedule, err = loans.GenerateAdjustableSchedule(m.HomeValue, m.Deposit, m.ArmPeriods)
	default:
		err = fmt.Errorf("%w: unsupported mortgage type %q", loans.ErrInvalidInput, m.Type)
	}
	if err != nil {
		return nil, err
	}
	if m.StartDate != "" {
		if err := assignDates(schedule, m.StartDate); err != nil {
			return nil, err
		}
	}

	result := &Result{
		ID:         c.newID(),
		Type:       m.Type,
		Segments:   m.Segments(),
		Summary:    loans.Summarize(schedule, loanAmount),
		Schedule:   schedule,
		Yearly:     schedule.YearlyBalances(),
		Boundaries: schedule.SegmentBoundaries(),
	}

	c.logSegments(result)
	if final := schedule.FinalBalance(); !mathutil.IsZero(final) {
		c.logger.Warn("schedule does not repay the loan",
			zap.String("op", "mortgage.Calculate"),
			zap.String("id", result.ID),
			zap.Float64("finalBalance", final),
		)
	}
	c.logger.Info("computed amortization schedule",
		zap.String("op", "mortgage.Calculate"),
		zap.String("id", result.ID),
		zap.String("type", result.Type),
		zap.Float64("loanAmount", loanAmount),
		zap.Float64("monthlyPayment", result.Summary.MonthlyPayment),
		zap.Int("periods", len(schedule)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// assignDates labels every row with the calendar month it is paid in.
func assignDates(schedule loans.Schedule, startDate string) error {
	dates, err := datetime.PaymentDates(startDate, len(schedule))
	if err != nil {
		return fmt.Errorf("%w: start date: %s", loans.ErrInvalidInput, err)
	}
	for i := range schedule {
		schedule[i].Date = dates[i]
	}
	return nil
}

func (c *Calculator) logSegments(result *Result) {
	if !c.logger.Core().Enabled(zap.DebugLevel) {
		return
	}

	first := 0
	for i, last := range result.Boundaries {
		rows := result.Schedule[first:last]
		c.logger.Debug(fmt.Sprintf("rate period %d: periods %d-%d paying %.2f, ending balance %.2f",
			i+1, rows[0].Period, last, rows[0].Payment, rows[len(rows)-1].RemainingBalance),
			zap.String("op", "mortgage.Calculate"),
			zap.String("id", result.ID),
		)
		first = last
	}
}
