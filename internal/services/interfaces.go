package services

import (
	"time"

	"github.com/shopspring/decimal"

	"spa-records/internal/models"
)

// CatalogServiceInterface defines the service-catalog business operations
type CatalogServiceInterface interface {
	AddService(category, name string, price decimal.Decimal, duration int, description, currency string) (*models.Service, error)
	UpdateService(category, name string, patch models.ServicePatch) (*models.Service, error)
	GetService(name string) (*models.Service, error)
	FindService(name string) (string, error)
	RemoveService(name string) (string, error)
	SetServicePrice(name string, price *decimal.Decimal, currency *string) (*models.Service, error)
	ChangeCurrencyForAll(currency string) error
	ServiceExists(name string) bool
	ListCatalog() []models.CategoryListing
	DefaultCurrency() string
	SaveToJSON(path string) error
	LoadFromJSON(path string) error
}

// AppointmentServiceInterface defines the appointment-store business
// operations. Date-time values arrive as text in one of the flexible layouts.
type AppointmentServiceInterface interface {
	AddAppointment(phoneID int, firstName, lastName, serviceName, dateTime string) (*models.Appointment, error)
	UpdateAppointment(phoneID int, patch models.AppointmentPatch) (*models.Appointment, error)
	FindAppointment(phoneID int) (*models.Appointment, error)
	RemoveAppointment(phoneID int) error
	ListAppointments(includePast bool) []models.Appointment
	SaveToJSON(path string) error
	LoadFromJSON(path string) error
}

// FinanceServiceInterface derives the financial summary from the appointment
// store, the catalog prices, and the fixed expense ledger.
type FinanceServiceInterface interface {
	TotalIncome() decimal.Decimal
	TotalExpenses() decimal.Decimal
	NetProfit() decimal.Decimal
	Report() *models.FinancialReport
}

// RecommendationServiceInterface computes popularity rankings and
// per-customer suggestions from the appointment store.
type RecommendationServiceInterface interface {
	PopularServices(topN int) ([]models.PopularService, error)
	RecommendForCustomer(phoneID int) (*models.CustomerRecommendations, error)
}

// MetricsRecorderInterface abstracts the metrics backend so handlers stay
// testable without a live Prometheus registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, labels map[string]string)
	RecordProcessingTime(operation string, duration time.Duration)
	SetGauge(name string, value float64)
}
