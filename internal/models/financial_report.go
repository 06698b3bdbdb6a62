package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profitability status labels
const (
	StatusProfitable = "Profitable"
	StatusLossMaking = "Loss Making"
	StatusBreakEven  = "Break Even"
)

// Efficiency labels, thresholds on the profit margin percentage
const (
	EfficiencyHigh     = "Highly Efficient"
	EfficiencyNormal   = "Efficient"
	EfficiencyLow      = "Low Efficiency"
	EfficiencyZero     = "Zero Margin"
	EfficiencyLossless = "Inefficient (Loss)"
)

// FinancialReport is the derived financial summary: income from all
// appointments (past ones included) minus the fixed expense ledger.
type FinancialReport struct {
	SpaName       string          `json:"spa_name"`
	Currency      string          `json:"currency"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ProfitMargin  decimal.Decimal `json:"profit_margin_percent"`
	Status        string          `json:"status"`
	Efficiency    string          `json:"efficiency"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// StatusFor classifies a net profit figure.
func StatusFor(netProfit decimal.Decimal) string {
	switch netProfit.Sign() {
	case 1:
		return StatusProfitable
	case -1:
		return StatusLossMaking
	default:
		return StatusBreakEven
	}
}

// EfficiencyFor classifies a profit margin percentage.
func EfficiencyFor(margin decimal.Decimal) string {
	switch {
	case margin.GreaterThan(decimal.NewFromInt(20)):
		return EfficiencyHigh
	case margin.GreaterThan(decimal.NewFromInt(10)):
		return EfficiencyNormal
	case margin.IsPositive():
		return EfficiencyLow
	case margin.IsZero():
		return EfficiencyZero
	default:
		return EfficiencyLossless
	}
}
