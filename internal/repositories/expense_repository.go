package repositories

import (
	"github.com/shopspring/decimal"

	"spa-records/internal/models"
)

// expenseRepository wraps the fixed expense ledger. Entries are set once at
// construction and never mutated, so no locking is needed.
type expenseRepository struct {
	ledger models.ExpenseLedger
}

// NewExpenseRepository creates a read-only view over the given ledger.
func NewExpenseRepository(ledger models.ExpenseLedger) ExpenseRepositoryInterface {
	copied := make(models.ExpenseLedger, len(ledger))
	for name, amount := range ledger {
		copied[name] = amount
	}
	return &expenseRepository{ledger: copied}
}

// Ledger returns a copy of the expense entries.
func (r *expenseRepository) Ledger() models.ExpenseLedger {
	copied := make(models.ExpenseLedger, len(r.ledger))
	for name, amount := range r.ledger {
		copied[name] = amount
	}
	return copied
}

// Total returns the sum of all fixed expenses.
func (r *expenseRepository) Total() decimal.Decimal {
	return r.ledger.Total()
}
