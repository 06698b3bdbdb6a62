package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"spa-records/internal/dto"
	"spa-records/internal/errors"
	"spa-records/internal/format"
	"spa-records/internal/models"
	"spa-records/internal/services"
)

// AppointmentHandler handles appointment-store HTTP requests
type AppointmentHandler struct {
	appointments services.AppointmentServiceInterface
	metrics      services.MetricsRecorderInterface
	defaultPath  string
	now          func() time.Time
}

// NewAppointmentHandler creates a new appointment handler. defaultPath is
// the appointments JSON file used when a persistence request names no file.
func NewAppointmentHandler(
	appointments services.AppointmentServiceInterface,
	metrics services.MetricsRecorderInterface,
	defaultPath string,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		metrics:      metrics,
		defaultPath:  defaultPath,
		now:          time.Now,
	}
}

// phoneIDParam parses the :phone_id path parameter. Non-integer input is the
// one place the old dynamic type check still exists at runtime.
func phoneIDParam(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("phone_id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListAppointments returns appointments sorted by date-time and grouped by
// calendar date. Past entries are excluded unless ?include_past=true.
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	includePast, _ := strconv.ParseBool(c.QueryParam("include_past"))

	appointments := h.appointments.ListAppointments(includePast)
	h.metrics.SetGauge("appointments_stored", float64(len(appointments)))

	response := dto.AppointmentListResponse{
		Total:       len(appointments),
		IncludePast: includePast,
		Days:        make([]dto.AppointmentDayGroup, 0),
	}

	now := h.now()
	for _, appt := range appointments {
		date := appt.DateTime.Format(format.DateLayout)
		if len(response.Days) == 0 || response.Days[len(response.Days)-1].Date != date {
			response.Days = append(response.Days, dto.AppointmentDayGroup{Date: date})
		}
		group := &response.Days[len(response.Days)-1]
		group.Appointments = append(group.Appointments, toAppointmentResponse(appt, now))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// CreateAppointment books a new appointment
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	start := time.Now()

	var req dto.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationNotAnInteger, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	appt, err := h.appointments.AddAppointment(req.PhoneID, req.FirstName, req.LastName, req.ServiceName, req.DateTime)

	h.metrics.RecordProcessingTime("appointment_create", time.Since(start))
	if err != nil {
		h.metrics.IncrementCounter("appointment_create", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	h.metrics.IncrementCounter("appointment_create", map[string]string{"status": "success"})
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toAppointmentResponse(*appt, h.now()),
		Message: "Appointment successfully added",
	})
}

// GetAppointment returns one appointment by phone ID
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	phoneID, ok := phoneIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationNotAnInteger)
	}

	appt, err := h.appointments.FindAppointment(phoneID)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toAppointmentResponse(*appt, h.now())})
}

// UpdateAppointment applies a sparse patch to an appointment
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	phoneID, ok := phoneIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationNotAnInteger)
	}

	var req dto.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	patch := models.AppointmentPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ServiceName: req.ServiceName,
		DateTime:    req.DateTime,
	}

	appt, err := h.appointments.UpdateAppointment(phoneID, patch)
	if err != nil {
		h.metrics.IncrementCounter("appointment_update", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	h.metrics.IncrementCounter("appointment_update", map[string]string{"status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toAppointmentResponse(*appt, h.now()),
		Message: "Appointment successfully updated",
	})
}

// DeleteAppointment removes an appointment by phone ID
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	phoneID, ok := phoneIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationNotAnInteger)
	}

	if err := h.appointments.RemoveAppointment(phoneID); err != nil {
		h.metrics.IncrementCounter("appointment_delete", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	h.metrics.IncrementCounter("appointment_delete", map[string]string{"status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Appointment removed successfully"})
}

// SaveAppointments persists the store to its JSON file
func (h *AppointmentHandler) SaveAppointments(c echo.Context) error {
	path := h.persistencePath(c)
	if path == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := h.appointments.SaveToJSON(path); err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Appointments saved to " + path})
}

// LoadAppointments replaces the store with the JSON file contents
func (h *AppointmentHandler) LoadAppointments(c echo.Context) error {
	path := h.persistencePath(c)
	if path == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := h.appointments.LoadFromJSON(path); err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Appointments loaded from " + path})
}

func (h *AppointmentHandler) persistencePath(c echo.Context) string {
	var req dto.PersistenceRequest
	if err := c.Bind(&req); err != nil {
		return ""
	}
	if req.Filename != "" {
		return req.Filename
	}
	return h.defaultPath
}

func toAppointmentResponse(appt models.Appointment, now time.Time) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		PhoneID:        appt.PhoneID,
		FirstName:      appt.FirstName,
		LastName:       appt.LastName,
		FullName:       appt.FullName(),
		ServiceName:    appt.ServiceName,
		ServiceDisplay: format.DisplayName(appt.ServiceName),
		DateTime:       appt.DateTime.Format("2006-01-02 15:04"),
		Past:           appt.IsPast(now),
	}
}
