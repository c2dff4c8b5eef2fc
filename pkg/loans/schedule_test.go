package loans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScheduleClosesToZero(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		ratePct   float64
		years     int
	}{
		{"30-year at 5%", 400000, 5.0, 30},
		{"15-year at 3.25%", 250000, 3.25, 15},
		{"1-year at 12%", 12000, 12.0, 1},
		{"40-year at 9.9%", 850000, 9.9, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := PeriodicRate(tt.ratePct)
			require.NoError(t, err)
			periods, err := TermPeriods(tt.years)
			require.NoError(t, err)
			payment, err := CalculateMonthlyPayment(tt.principal, rate, periods)
			require.NoError(t, err)

			schedule, err := GenerateSchedule(tt.principal, payment, rate, periods, 1)
			require.NoError(t, err)
			require.Len(t, schedule, periods)

			assert.InDelta(t, 0, schedule.FinalBalance(), 1e-6*tt.principal)
			assert.InEpsilon(t, tt.principal, schedule.TotalPrincipal(), 1e-6)

			for i, row := range schedule {
				assert.Equal(t, i+1, row.Period)
				assert.Equal(t, (row.Period+11)/12, row.Year)
				assert.Equal(t, 1, row.Segment)
				assert.InDelta(t, row.Payment, row.Principal+row.Interest, 1e-9*tt.principal)
			}
		})
	}
}

func TestGenerateScheduleZeroRate(t *testing.T) {
	payment, err := CalculateMonthlyPayment(100000, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, payment)

	schedule, err := GenerateSchedule(100000, payment, 0, 100, 1)
	require.NoError(t, err)
	require.Len(t, schedule, 100)

	for _, row := range schedule {
		assert.Equal(t, 0.0, row.Interest)
		assert.Equal(t, 1000.0, row.Principal)
	}
	assert.Equal(t, 99000.0, schedule[0].RemainingBalance)
	assert.InDelta(t, 0, schedule.FinalBalance(), 1e-6)
}

func TestGenerateScheduleStartPeriod(t *testing.T) {
	schedule, err := GenerateSchedule(50000, 1000, 0.004, 24, 61)
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	assert.Equal(t, 61, schedule[0].Period)
	assert.Equal(t, 6, schedule[0].Year)
	assert.Equal(t, 72, schedule[11].Period)
	assert.Equal(t, 6, schedule[11].Year)
	assert.Equal(t, 73, schedule[12].Period)
	assert.Equal(t, 7, schedule[12].Year)
	assert.Equal(t, 84, schedule[23].Period)
}

func TestGenerateScheduleNegativeAmortization(t *testing.T) {
	// 100000 at 1% per period accrues 1000 of interest; paying 500 grows the balance.
	schedule, err := GenerateSchedule(100000, 500, 0.01, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, schedule[0].Interest)
	assert.Equal(t, -500.0, schedule[0].Principal)
	assert.Equal(t, 100500.0, schedule[0].RemainingBalance)
	assert.Greater(t, schedule[2].RemainingBalance, schedule[1].RemainingBalance)
}

func TestGenerateScheduleDoesNotShareState(t *testing.T) {
	first, err := GenerateSchedule(10000, 900, 0.01, 12, 1)
	require.NoError(t, err)
	second, err := GenerateSchedule(10000, 900, 0.01, 12, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	first[0].RemainingBalance = -1
	assert.NotEqual(t, first[0].RemainingBalance, second[0].RemainingBalance)
}

func TestGenerateScheduleInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		balance     float64
		payment     float64
		rate        float64
		periods     int
		startPeriod int
	}{
		{"Negative balance", -1, 100, 0.01, 12, 1},
		{"Negative rate", 1000, 100, -0.01, 12, 1},
		{"Zero periods", 1000, 100, 0.01, 0, 1},
		{"Zero start period", 1000, 100, 0.01, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := GenerateSchedule(tt.balance, tt.payment, tt.rate, tt.periods, tt.startPeriod)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, schedule)
		})
	}
}

func TestFixedSchedule(t *testing.T) {
	schedule, err := FixedSchedule(500000, 100000, 5.0, 30)
	require.NoError(t, err)
	require.Len(t, schedule, 360)

	assert.InDelta(t, 2147.29, schedule[0].Payment, 0.005)
	assert.InDelta(t, 400000*0.05/12, schedule[0].Interest, 1e-9)
	assert.Equal(t, 30, schedule[359].Year)
	assert.InDelta(t, 0, schedule.FinalBalance(), 1e-3)
}

func TestFixedScheduleRejectsDepositAtOrAboveHomeValue(t *testing.T) {
	_, err := FixedSchedule(300000, 300000, 5.0, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "deposit cannot exceed or equal home value")

	_, err = FixedSchedule(300000, 0, 5.0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FixedSchedule(300000, 0, -1, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
