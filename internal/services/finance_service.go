package services

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"spa-records/internal/models"
	"spa-records/internal/repositories"
)

var oneHundred = decimal.NewFromInt(100)

type financeService struct {
	catalog      CatalogServiceInterface
	appointments AppointmentServiceInterface
	expenses     repositories.ExpenseRepositoryInterface
	spaName      string
	now          func() time.Time
}

// NewFinanceService creates the finance summarizer over its two collaborator
// managers and the fixed expense ledger.
func NewFinanceService(
	catalog CatalogServiceInterface,
	appointments AppointmentServiceInterface,
	expenses repositories.ExpenseRepositoryInterface,
	spaName string,
) FinanceServiceInterface {
	return &financeService{
		catalog:      catalog,
		appointments: appointments,
		expenses:     expenses,
		spaName:      spaName,
		now:          time.Now,
	}
}

// TotalIncome sums the catalog price of the service referenced by every
// appointment, past ones included. An appointment whose service no longer
// resolves contributes zero, silently; removing a service must not turn old
// bookings into errors.
func (s *financeService) TotalIncome() decimal.Decimal {
	income := decimal.Zero

	for _, appt := range s.appointments.ListAppointments(true) {
		svc, err := s.catalog.GetService(appt.ServiceName)
		if err != nil {
			continue
		}
		income = income.Add(svc.Price)
	}

	return income.Round(2)
}

// TotalExpenses sums the fixed expense ledger.
func (s *financeService) TotalExpenses() decimal.Decimal {
	return s.expenses.Total()
}

// NetProfit is income minus expenses, rounded to 2 decimal places.
func (s *financeService) NetProfit() decimal.Decimal {
	return s.TotalIncome().Sub(s.TotalExpenses()).Round(2)
}

// Report assembles the full financial summary. The margin is exactly zero
// when income is zero; the division is short-circuited, not an error.
func (s *financeService) Report() *models.FinancialReport {
	income := s.TotalIncome()
	expenses := s.TotalExpenses()
	netProfit := income.Sub(expenses).Round(2)

	margin := decimal.Zero
	if income.IsPositive() {
		margin = netProfit.Div(income).Mul(oneHundred).Round(2)
	}

	report := &models.FinancialReport{
		SpaName:       s.spaName,
		Currency:      s.catalog.DefaultCurrency(),
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetProfit:     netProfit,
		ProfitMargin:  margin,
		Status:        models.StatusFor(netProfit),
		Efficiency:    models.EfficiencyFor(margin),
		GeneratedAt:   s.now(),
	}

	slog.Info("financial report generated",
		"total_income", income.String(),
		"total_expenses", expenses.String(),
		"net_profit", netProfit.String(),
		"status", report.Status)

	return report
}
