package repositories

import "errors"

// Storage and lookup errors shared by the repositories. Handlers map these to
// the standardized error codes.
var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrDuplicateService     = errors.New("service already exists in this category")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDuplicateAppointment = errors.New("appointment already exists for this phone ID")

	ErrFileNotFound     = errors.New("data file not found")
	ErrMalformedJSON    = errors.New("error decoding JSON file")
	ErrInvalidStructure = errors.New("invalid JSON structure")
)
