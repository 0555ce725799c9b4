package domain

import (
	"github.com/shopspring/decimal"
)

// Risk tolerance bounds as presented by the input form
const (
	MinRiskTolerance     = 1
	MaxRiskTolerance     = 10
	DefaultRiskTolerance = 5
)

// AmountStep is the increment offered by the income and expense inputs
const AmountStep = 100

// FinancialProfile holds the inputs of a single advice request.
// It lives only for the duration of that request.
type FinancialProfile struct {
	Income             decimal.Decimal `json:"income"`
	Expenses           decimal.Decimal `json:"expenses"`
	CurrentInvestments string          `json:"currentInvestments"`
	RiskTolerance      int             `json:"riskTolerance"`
	Goals              string          `json:"goals"`
}

// Savings returns income minus expenses. The result may be negative.
func (p FinancialProfile) Savings() decimal.Decimal {
	return p.Income.Sub(p.Expenses)
}

// Validate checks that both income and expenses are strictly positive
func (p FinancialProfile) Validate() error {
	if !p.Income.IsPositive() || !p.Expenses.IsPositive() {
		return ErrInvalidAmounts
	}
	return nil
}

// ClampRiskTolerance maps any value onto [MinRiskTolerance, MaxRiskTolerance]
func ClampRiskTolerance(v int) int {
	switch {
	case v < MinRiskTolerance:
		return MinRiskTolerance
	case v > MaxRiskTolerance:
		return MaxRiskTolerance
	default:
		return v
	}
}
