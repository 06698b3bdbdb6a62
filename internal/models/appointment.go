package models

import (
	"fmt"
	"time"

	"spa-records/internal/format"
)

// Appointment links an 8-digit phone ID to a booked service at a point in
// time. Names are stored lower-cased; ServiceName is held in slug form and
// references the catalog without owning it, so a service removed later leaves
// the appointment behind with a dangling reference.
type Appointment struct {
	PhoneID     int       `json:"phone_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	ServiceName string    `json:"service_name"`
	DateTime    time.Time `json:"date_time"`
}

// IsPast reports whether the appointment lies strictly before the given
// instant. Pastness is always derived, never stored.
func (a *Appointment) IsPast(now time.Time) bool {
	return a.DateTime.Before(now)
}

// FullName returns the customer name in display form.
func (a *Appointment) FullName() string {
	return format.DisplayName(fmt.Sprintf("%s %s", a.FirstName, a.LastName))
}

// CustomerKey returns the name pair used as customer identity by the
// recommendation engine. Identity is name-based, not id-based: two phone IDs
// sharing a first and last name count as the same customer.
func (a *Appointment) CustomerKey() string {
	return a.FirstName + "\x00" + a.LastName
}

// AppointmentPatch carries the optional fields of a sparse appointment
// update. Nil pointers mean "leave untouched". DateTime arrives as text and
// is parsed with the same flexible layouts as creation.
type AppointmentPatch struct {
	FirstName   *string
	LastName    *string
	ServiceName *string
	DateTime    *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p AppointmentPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.ServiceName == nil && p.DateTime == nil
}
