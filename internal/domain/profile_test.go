package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFinancialProfile_Savings(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		expected string
	}{
		{"positive savings", "5000", "3000", "2000"},
		{"negative savings", "1000", "2500", "-1500"},
		{"zero savings", "4200", "4200", "0"},
		{"cents preserved", "5000.55", "3000.10", "2000.45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FinancialProfile{
				Income:   decimal.RequireFromString(tt.income),
				Expenses: decimal.RequireFromString(tt.expenses),
			}
			if got := p.Savings().String(); got != tt.expected {
				t.Errorf("Savings() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestFinancialProfile_Validate(t *testing.T) {
	tests := []struct {
		name     string
		income   int64
		expenses int64
		wantErr  bool
	}{
		{"both positive", 5000, 3000, false},
		{"expenses above income", 1000, 3000, false},
		{"zero income", 0, 100, true},
		{"zero expenses", 100, 0, true},
		{"negative income", -100, 100, true},
		{"both zero", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FinancialProfile{
				Income:   decimal.NewFromInt(tt.income),
				Expenses: decimal.NewFromInt(tt.expenses),
			}
			err := p.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidAmounts) {
				t.Errorf("expected ErrInvalidAmounts, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestClampRiskTolerance(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinRiskTolerance},
		{-3, MinRiskTolerance},
		{1, 1},
		{7, 7},
		{10, 10},
		{42, MaxRiskTolerance},
	}

	for _, tt := range tests {
		if got := ClampRiskTolerance(tt.in); got != tt.want {
			t.Errorf("ClampRiskTolerance(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
