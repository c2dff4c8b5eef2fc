package config

import (
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/loans"
)

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := Configuration{
		Mortgage: Mortgage{
			Type:      "arm",
			HomeValue: 600000,
			Deposit:   120000,
			ArmPeriods: []loans.RateSegment{
				{AnnualRatePercent: 0, DurationYears: 10},
				{AnnualRatePercent: 6.5, DurationYears: 35},
			},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}

	expected := []string{"exceeds 40 years", "Rate period 1 has a 0% interest rate", "carry no remaining balance"}
	for i, snippet := range expected {
		if !strings.Contains(warnings[i], snippet) {
			t.Errorf("warning %d = %q, expected it to contain %q", i, warnings[i], snippet)
		}
	}
}

func TestValidateConfigurationNoWarnings(t *testing.T) {
	conf := Configuration{
		Mortgage: Mortgage{Type: "frm", HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 30},
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
