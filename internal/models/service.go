package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// Service represents a bookable treatment in the catalog. Name and Category
// are held in slug form; the display form is derived, never stored.
type Service struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Duration    int             `json:"duration"`
	Description string          `json:"description"`
}

// Validate checks the semantic constraints on a service: a non-negative price
// and a strictly positive duration.
func (s *Service) Validate() error {
	if s.Price.IsNegative() {
		return ErrNegativePrice
	}
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// ServicePatch carries the optional fields of a partial service update.
// Nil pointers mean "leave untouched".
type ServicePatch struct {
	Price       *decimal.Decimal
	Duration    *int
	Description *string
	Currency    *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ServicePatch) IsEmpty() bool {
	return p.Price == nil && p.Duration == nil && p.Description == nil && p.Currency == nil
}

// Validate checks the supplied fields of the patch against the same rules as
// Service.Validate. Absent fields are skipped.
func (p ServicePatch) Validate() error {
	if p.Price != nil && p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// CategoryListing groups the services of one category for display, ordered by
// service name.
type CategoryListing struct {
	Category string    `json:"category"`
	Services []Service `json:"services"`
}
