package repositories

import (
	"github.com/shopspring/decimal"

	"spa-records/internal/models"
)

// CatalogRepositoryInterface is the storage contract for the service catalog.
// All names are expected in slug form; lookups are tolerant to case and
// space/underscore variants because callers normalize through the same slug
// function the repository keys by.
type CatalogRepositoryInterface interface {
	DefaultCurrency() string
	Find(name string) (string, *models.Service, bool)
	Get(category, name string) (*models.Service, bool)
	Exists(name string) bool
	Insert(category string, svc models.Service) error
	Apply(category, name string, fn func(*models.Service)) error
	ApplyByName(name string, fn func(*models.Service)) error
	Remove(name string) (string, error)
	SetCurrencyForAll(currency string)
	Listing() []models.CategoryListing
	Count() int
	ReplaceAll(data map[string]map[string]models.Service)
	SaveToFile(path string) error
	LoadFromFile(path string) error
}

// AppointmentRepositoryInterface is the storage contract for the appointment
// store: one appointment per phone ID.
type AppointmentRepositoryInterface interface {
	Get(phoneID int) (*models.Appointment, bool)
	Insert(appt models.Appointment) error
	Update(appt models.Appointment) error
	Remove(phoneID int) error
	List() []models.Appointment
	Count() int
	ReplaceAll(data map[int]models.Appointment)
	SaveToFile(path string) error
	LoadFromFile(path string) error
}

// ExpenseRepositoryInterface exposes the fixed expense ledger.
type ExpenseRepositoryInterface interface {
	Ledger() models.ExpenseLedger
	Total() decimal.Decimal
}
