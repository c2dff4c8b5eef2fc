package config

import (
	"errors"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
)

func TestMortgageNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", constants.MortgageTypeFixed},
		{"FRM", constants.MortgageTypeFixed},
		{" fixed-rate ", constants.MortgageTypeFixed},
		{"ARM", constants.MortgageTypeAdjustable},
		{"Adjustable", constants.MortgageTypeAdjustable},
		{"Balloon", "balloon"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := Mortgage{Type: tt.input}
			m.Normalize()
			if m.Type != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, m.Type, tt.expected)
			}
		})
	}
}

func TestMortgageSegments(t *testing.T) {
	fixed := Mortgage{Type: constants.MortgageTypeFixed, InterestRate: 4.5, TermYears: 15}
	segments := fixed.Segments()
	if len(segments) != 1 || segments[0] != (loans.RateSegment{AnnualRatePercent: 4.5, DurationYears: 15}) {
		t.Errorf("unexpected fixed-rate segments: %+v", segments)
	}
	if fixed.TotalYears() != 15 {
		t.Errorf("TotalYears() = %d, expected 15", fixed.TotalYears())
	}

	adjustable := Mortgage{
		Type:         constants.MortgageTypeAdjustable,
		InterestRate: 9.9,
		TermYears:    40,
		ArmPeriods: []loans.RateSegment{
			{AnnualRatePercent: 3.0, DurationYears: 7},
			{AnnualRatePercent: 5.0, DurationYears: 23},
		},
	}
	if len(adjustable.Segments()) != 2 {
		t.Errorf("expected ARM periods to be used, got %+v", adjustable.Segments())
	}
	if adjustable.TotalYears() != 30 {
		t.Errorf("TotalYears() = %d, expected 30", adjustable.TotalYears())
	}
}

func TestMortgageValidate(t *testing.T) {
	tests := []struct {
		name      string
		mortgage  Mortgage
		wantError bool
	}{
		{
			name:     "Valid fixed-rate",
			mortgage: Mortgage{Type: "frm", HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 30},
		},
		{
			name:     "Valid zero-rate",
			mortgage: Mortgage{Type: "frm", HomeValue: 500000, Deposit: 0, InterestRate: 0, TermYears: 10},
		},
		{
			name: "Valid adjustable",
			mortgage: Mortgage{Type: "arm", HomeValue: 500000, Deposit: 100000,
				ArmPeriods: []loans.RateSegment{{AnnualRatePercent: 5, DurationYears: 5}}},
		},
		{
			name:     "Valid start date",
			mortgage: Mortgage{Type: "frm", HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 30, StartDate: "2025-01"},
		},
		{
			name:      "Invalid start date",
			mortgage:  Mortgage{Type: "frm", HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 30, StartDate: "2025-1"},
			wantError: true,
		},
		{
			name:      "Deposit exceeds home value",
			mortgage:  Mortgage{Type: "frm", HomeValue: 100000, Deposit: 120000, InterestRate: 5, TermYears: 30},
			wantError: true,
		},
		{
			name:      "Zero term",
			mortgage:  Mortgage{Type: "frm", HomeValue: 500000, Deposit: 100000, InterestRate: 5},
			wantError: true,
		},
		{
			name:      "Negative rate",
			mortgage:  Mortgage{Type: "frm", HomeValue: 500000, Deposit: 100000, InterestRate: -1, TermYears: 30},
			wantError: true,
		},
		{
			name:      "Adjustable without periods",
			mortgage:  Mortgage{Type: "arm", HomeValue: 500000, Deposit: 100000},
			wantError: true,
		},
		{
			name:      "Unknown type",
			mortgage:  Mortgage{Type: "balloon", HomeValue: 500000, Deposit: 100000, InterestRate: 5, TermYears: 30},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mortgage.Validate()
			if tt.wantError {
				if !errors.Is(err, loans.ErrInvalidInput) {
					t.Errorf("Validate() error = %v, expected ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
