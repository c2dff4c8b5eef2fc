package loans

// Summary holds the headline totals of a schedule.
type Summary struct {
	LoanAmount     float64 `json:"loanAmount" yaml:"loanAmount"`
	MonthlyPayment float64 `json:"monthlyPayment" yaml:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid" yaml:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest" yaml:"totalInterest"`
	Periods        int     `json:"periods" yaml:"periods"`
	Years          int     `json:"years" yaml:"years"`
}

// YearBalance is the lowest remaining balance observed within a loan year.
type YearBalance struct {
	Year             int     `json:"year" yaml:"year"`
	RemainingBalance float64 `json:"remainingBalance" yaml:"remainingBalance"`
}

// Summarize derives the totals of schedule. MonthlyPayment is the first
// period's payment, which for an adjustable loan is the initial rate period's.
func Summarize(schedule Schedule, loanAmount float64) Summary {
	summary := Summary{LoanAmount: loanAmount, Periods: len(schedule)}
	if len(schedule) == 0 {
		return summary
	}

	summary.MonthlyPayment = schedule[0].Payment
	summary.Years = schedule[len(schedule)-1].Year
	for _, payment := range schedule {
		summary.TotalPaid += payment.Payment
		summary.TotalInterest += payment.Interest
	}
	return summary
}

// TotalPrincipal sums the principal portion of every period.
func (s Schedule) TotalPrincipal() float64 {
	total := 0.0
	for _, payment := range s {
		total += payment.Principal
	}
	return total
}

// FinalBalance returns the remaining balance after the last period.
func (s Schedule) FinalBalance() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].RemainingBalance
}

// YearlyBalances groups the schedule by loan year and keeps the minimum
// remaining balance of each year, ordered by year.
func (s Schedule) YearlyBalances() []YearBalance {
	var balances []YearBalance
	for _, payment := range s {
		last := len(balances) - 1
		if last >= 0 && balances[last].Year == payment.Year {
			if payment.RemainingBalance < balances[last].RemainingBalance {
				balances[last].RemainingBalance = payment.RemainingBalance
			}
			continue
		}
		balances = append(balances, YearBalance{Year: payment.Year, RemainingBalance: payment.RemainingBalance})
	}
	return balances
}

// SegmentBoundaries returns the period number of the last payment of each
// rate period.
func (s Schedule) SegmentBoundaries() []int {
	var boundaries []int
	for i, payment := range s {
		if i == len(s)-1 || s[i+1].Segment != payment.Segment {
			boundaries = append(boundaries, payment.Period)
		}
	}
	return boundaries
}
