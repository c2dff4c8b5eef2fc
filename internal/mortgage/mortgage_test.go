package mortgage

import (
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCalculateFixed(t *testing.T) {
	calc := NewCalculator(zap.NewNop())

	result, err := calc.Calculate(config.Mortgage{
		Type:         "FRM",
		HomeValue:    500000,
		Deposit:      100000,
		InterestRate: 5.0,
		TermYears:    30,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, constants.MortgageTypeFixed, result.Type)
	assert.Len(t, result.Schedule, 360)
	assert.Len(t, result.Yearly, 30)
	assert.Equal(t, []int{360}, result.Boundaries)
	assert.Equal(t, 400000.0, result.Summary.LoanAmount)
	assert.InDelta(t, 2147.29, result.Summary.MonthlyPayment, 0.005)
	assert.InDelta(t, result.Summary.TotalPaid-400000, result.Summary.TotalInterest, 1e-4)
	assert.Equal(t, []loans.RateSegment{{AnnualRatePercent: 5.0, DurationYears: 30}}, result.Segments)
}

func TestCalculateAdjustable(t *testing.T) {
	calc := NewCalculator(nil)

	result, err := calc.Calculate(config.Mortgage{
		Type:      constants.MortgageTypeAdjustable,
		HomeValue: 500000,
		Deposit:   100000,
		ArmPeriods: []loans.RateSegment{
			{AnnualRatePercent: 5.0, DurationYears: 5},
			{AnnualRatePercent: 6.0, DurationYears: 25},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.MortgageTypeAdjustable, result.Type)
	assert.Len(t, result.Schedule, 360)
	assert.Equal(t, []int{60, 360}, result.Boundaries)
	assert.Equal(t, result.Schedule[0].Payment, result.Summary.MonthlyPayment)
	assert.Equal(t, result.Schedule[59].RemainingBalance-result.Schedule[60].Principal, result.Schedule[60].RemainingBalance)
}

func TestCalculateUniqueIDs(t *testing.T) {
	calc := NewCalculator(zap.NewNop())
	m := config.Mortgage{HomeValue: 300000, Deposit: 50000, InterestRate: 4.0, TermYears: 15}

	first, err := calc.Calculate(m)
	require.NoError(t, err)
	second, err := calc.Calculate(m)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Schedule, second.Schedule)
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		mortgage config.Mortgage
	}{
		{"Deposit equals home value", config.Mortgage{HomeValue: 500000, Deposit: 500000, InterestRate: 5, TermYears: 30}},
		{"Zero term", config.Mortgage{HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 0}},
		{"Negative rate", config.Mortgage{HomeValue: 500000, Deposit: 100000, InterestRate: -2, TermYears: 30}},
		{"Unknown type", config.Mortgage{Type: "balloon", HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 30}},
		{"ARM without periods", config.Mortgage{Type: "arm", HomeValue: 500000, Deposit: 100000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewCalculator(zap.NewNop()).Calculate(tt.mortgage)
			assert.ErrorIs(t, err, loans.ErrInvalidInput)
			assert.Nil(t, result)
		})
	}
}

func TestCalculateLogsRatePeriods(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calc := NewCalculator(zap.New(core))

	_, err := calc.Calculate(config.Mortgage{
		Type:      "adjustable",
		HomeValue: 400000,
		Deposit:   80000,
		ArmPeriods: []loans.RateSegment{
			{AnnualRatePercent: 4.5, DurationYears: 7},
			{AnnualRatePercent: 6.5, DurationYears: 23},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessageSnippet("rate period").Len())
	assert.Equal(t, 1, logs.FilterMessage("computed amortization schedule").Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "mortgage.Calculate", entry.ContextMap()["op"])
	}
}

func TestCalculateStartDate(t *testing.T) {
	calc := NewCalculator(zap.NewNop())

	result, err := calc.Calculate(config.Mortgage{
		HomeValue:    500000,
		Deposit:      100000,
		InterestRate: 5.0,
		TermYears:    30,
		StartDate:    "2025-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", result.Schedule[0].Date)
	assert.Equal(t, "2026-02", result.Schedule[11].Date)
	assert.Equal(t, "2055-02", result.Schedule[359].Date)

	_, err = calc.Calculate(config.Mortgage{
		HomeValue:    500000,
		Deposit:      100000,
		InterestRate: 5.0,
		TermYears:    30,
		StartDate:    "03/2025",
	})
	assert.ErrorIs(t, err, loans.ErrInvalidInput)
}
