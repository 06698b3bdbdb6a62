package dto

// CreateAppointmentRequest is the payload for booking an appointment.
// The phone ID deliberately has no validate tag: the service layer reports
// the precise failure kind (negative vs. wrong length) itself.
type CreateAppointmentRequest struct {
	PhoneID     int    `json:"phone_id"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	ServiceName string `json:"service_name" validate:"required,service_name"`
	DateTime    string `json:"date_time" validate:"required,flexible_datetime"`
}

// UpdateAppointmentRequest is a sparse patch; nil fields stay untouched
type UpdateAppointmentRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	ServiceName *string `json:"service_name" validate:"omitempty,service_name"`
	DateTime    *string `json:"date_time" validate:"omitempty,flexible_datetime"`
}

// AppointmentResponse is the API shape of one appointment
type AppointmentResponse struct {
	PhoneID        int    `json:"phone_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	ServiceName    string `json:"service_name"`
	ServiceDisplay string `json:"service_display"`
	DateTime       string `json:"date_time"`
	Past           bool   `json:"past"`
}

// AppointmentDayGroup groups the appointments of one calendar date for
// display, a presentation concern only
type AppointmentDayGroup struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// AppointmentListResponse is the grouped, date-sorted appointment listing
type AppointmentListResponse struct {
	Total       int                   `json:"total"`
	IncludePast bool                  `json:"include_past"`
	Days        []AppointmentDayGroup `json:"days"`
}
