package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/datetime"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
)

// Mortgage describes the loan to amortize.
type Mortgage struct {
	Type         string              `json:"type" yaml:"type" mapstructure:"type"` // frm, arm
	HomeValue    float64             `json:"homeValue" yaml:"homeValue" mapstructure:"homeValue"`
	Deposit      float64             `json:"deposit" yaml:"deposit" mapstructure:"deposit"`
	InterestRate float64             `json:"interestRate,omitempty" yaml:"interestRate,omitempty" mapstructure:"interestRate"` // annual percent, frm only
	TermYears    int                 `json:"termYears,omitempty" yaml:"termYears,omitempty" mapstructure:"termYears"`          // frm only
	ArmPeriods   []loans.RateSegment `json:"armPeriods,omitempty" yaml:"armPeriods,omitempty" mapstructure:"armPeriods"`
	StartDate    string              `json:"startDate,omitempty" yaml:"startDate,omitempty" mapstructure:"startDate"` // YYYY-MM of the first payment, optional
}

// Normalize lower-cases the mortgage type and accepts the long-form names.
func (m *Mortgage) Normalize() {
	switch strings.ToLower(strings.TrimSpace(m.Type)) {
	case "", constants.MortgageTypeFixed, "fixed", "fixed-rate":
		m.Type = constants.MortgageTypeFixed
	case constants.MortgageTypeAdjustable, "adjustable", "adjustable-rate":
		m.Type = constants.MortgageTypeAdjustable
	default:
		m.Type = strings.ToLower(strings.TrimSpace(m.Type))
	}
}

// IsAdjustable reports whether the mortgage is an ARM.
func (m Mortgage) IsAdjustable() bool {
	return m.Type == constants.MortgageTypeAdjustable
}

// LoanAmount returns the amount financed.
func (m Mortgage) LoanAmount() (float64, error) {
	return loans.LoanAmount(m.HomeValue, m.Deposit)
}

// Segments returns the rate periods of the mortgage. A fixed-rate mortgage
// is a single period covering the whole term.
func (m Mortgage) Segments() []loans.RateSegment {
	if m.IsAdjustable() {
		return m.ArmPeriods
	}
	return []loans.RateSegment{{AnnualRatePercent: m.InterestRate, DurationYears: m.TermYears}}
}

// TotalYears returns the combined term of all rate periods.
func (m Mortgage) TotalYears() int {
	total := 0
	for _, segment := range m.Segments() {
		total += segment.DurationYears
	}
	return total
}

// Validate checks the mortgage against the preconditions of the
// amortization functions. Returned errors wrap loans.ErrInvalidInput.
func (m Mortgage) Validate() error {
	if err := validation.ValidateMortgageType(m.Type); err != nil {
		return fmt.Errorf("%w: %s", loans.ErrInvalidInput, err)
	}
	if _, err := m.LoanAmount(); err != nil {
		return err
	}
	if m.StartDate != "" {
		if err := datetime.ValidateMonth(m.StartDate); err != nil {
			return fmt.Errorf("%w: start date: %s", loans.ErrInvalidInput, err)
		}
	}
	if m.IsAdjustable() {
		return loans.ValidateSegments(m.ArmPeriods)
	}
	if _, err := loans.PeriodicRate(m.InterestRate); err != nil {
		return err
	}
	_, err := loans.TermPeriods(m.TermYears)
	return err
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	validator := validation.MortgageValidator{
		Type:     conf.Mortgage.Type,
		Segments: conf.Mortgage.Segments(),
	}
	return validator.ValidateAll()
}
