package models

import "github.com/shopspring/decimal"

// ExpenseLedger is the fixed mapping of monthly cost categories to amounts.
// It is read-only after process start; there is no lifecycle beyond that.
type ExpenseLedger map[string]decimal.Decimal

// Total returns the sum of all ledger entries.
func (l ExpenseLedger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range l {
		total = total.Add(amount)
	}
	return total
}
