package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"spa-records/internal/format"
	"spa-records/internal/models"
	"spa-records/internal/repositories"
	"spa-records/internal/validation"
)

var (
	ErrUnknownService  = errors.New("booked service does not exist in the catalog")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrPastAppointment = errors.New("cannot create appointment in the past")
)

type appointmentService struct {
	repo    repositories.AppointmentRepositoryInterface
	catalog CatalogServiceInterface
	now     func() time.Time
}

// AppointmentServiceOption configures the appointment service.
type AppointmentServiceOption func(*appointmentService)

// WithClock overrides the wall clock, used by tests to pin "now".
func WithClock(now func() time.Time) AppointmentServiceOption {
	return func(s *appointmentService) {
		s.now = now
	}
}

// NewAppointmentService creates the appointment manager. The catalog is a
// collaborator consulted for service existence only; the appointment store
// never mutates it.
func NewAppointmentService(
	repo repositories.AppointmentRepositoryInterface,
	catalog CatalogServiceInterface,
	opts ...AppointmentServiceOption,
) AppointmentServiceInterface {
	s := &appointmentService{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddAppointment validates every field and stores a new appointment. The
// validation order is fixed: phone ID (sign before length), duplicate check,
// service existence, date parsing, past rejection. Nothing is written until
// every check has passed.
func (s *appointmentService) AddAppointment(phoneID int, firstName, lastName, serviceName, dateTime string) (*models.Appointment, error) {
	if err := validation.ValidatePhoneID(phoneID); err != nil {
		return nil, err
	}

	if _, exists := s.repo.Get(phoneID); exists {
		return nil, fmt.Errorf("%w: %d", repositories.ErrDuplicateAppointment, phoneID)
	}

	if !s.catalog.ServiceExists(serviceName) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, serviceName)
	}

	parsed, ok := format.ParseFlexibleDateTime(dateTime)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dateTime)
	}

	if parsed.Before(s.now()) {
		return nil, ErrPastAppointment
	}

	appt := models.Appointment{
		PhoneID:     phoneID,
		FirstName:   strings.ToLower(firstName),
		LastName:    strings.ToLower(lastName),
		ServiceName: format.Slug(serviceName),
		DateTime:    parsed,
	}

	if err := s.repo.Insert(appt); err != nil {
		return nil, err
	}

	slog.Info("appointment added",
		"phone_id", phoneID,
		"service", appt.ServiceName,
		"date_time", format.FormatTimestamp(appt.DateTime))

	return &appt, nil
}

// UpdateAppointment applies a sparse patch to an existing appointment. Each
// supplied field is re-validated with the same rules as creation; fields left
// nil stay untouched. Validation happens on a working copy, so a failed check
// leaves the stored record exactly as it was.
func (s *appointmentService) UpdateAppointment(phoneID int, patch models.AppointmentPatch) (*models.Appointment, error) {
	if err := validation.ValidatePhoneID(phoneID); err != nil {
		return nil, err
	}

	current, exists := s.repo.Get(phoneID)
	if !exists {
		return nil, fmt.Errorf("%w: %d", repositories.ErrAppointmentNotFound, phoneID)
	}

	updated := *current

	if patch.FirstName != nil {
		updated.FirstName = strings.ToLower(*patch.FirstName)
	}

	if patch.LastName != nil {
		updated.LastName = strings.ToLower(*patch.LastName)
	}

	if patch.ServiceName != nil {
		if !s.catalog.ServiceExists(*patch.ServiceName) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, *patch.ServiceName)
		}
		updated.ServiceName = format.Slug(*patch.ServiceName)
	}

	if patch.DateTime != nil {
		parsed, ok := format.ParseFlexibleDateTime(*patch.DateTime)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *patch.DateTime)
		}
		if parsed.Before(s.now()) {
			return nil, ErrPastAppointment
		}
		updated.DateTime = parsed
	}

	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}

	slog.Info("appointment updated", "phone_id", phoneID)
	return &updated, nil
}

// FindAppointment returns the appointment for a phone ID.
func (s *appointmentService) FindAppointment(phoneID int) (*models.Appointment, error) {
	if err := validation.ValidatePhoneID(phoneID); err != nil {
		return nil, err
	}

	appt, exists := s.repo.Get(phoneID)
	if !exists {
		return nil, fmt.Errorf("%w: %d", repositories.ErrAppointmentNotFound, phoneID)
	}
	return appt, nil
}

// RemoveAppointment deletes the appointment for a phone ID.
func (s *appointmentService) RemoveAppointment(phoneID int) error {
	if err := validation.ValidatePhoneID(phoneID); err != nil {
		return err
	}

	if err := s.repo.Remove(phoneID); err != nil {
		return err
	}

	slog.Info("appointment removed", "phone_id", phoneID)
	return nil
}

// ListAppointments returns appointments sorted ascending by date-time.
// Past entries are excluded unless includePast is set; pastness is derived
// against the clock at call time, never stored.
func (s *appointmentService) ListAppointments(includePast bool) []models.Appointment {
	now := s.now()

	all := s.repo.List()
	visible := make([]models.Appointment, 0, len(all))
	for _, appt := range all {
		if !includePast && appt.IsPast(now) {
			continue
		}
		visible = append(visible, appt)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].DateTime.Before(visible[j].DateTime)
	})

	return visible
}

func (s *appointmentService) SaveToJSON(path string) error {
	if err := s.repo.SaveToFile(path); err != nil {
		slog.Error("failed to save appointments", "path", path, "error", err)
		return err
	}

	slog.Info("appointments saved", "path", path, "count", s.repo.Count())
	return nil
}

func (s *appointmentService) LoadFromJSON(path string) error {
	if err := s.repo.LoadFromFile(path); err != nil {
		slog.Error("failed to load appointments", "path", path, "error", err)
		return err
	}

	slog.Info("appointments loaded", "path", path, "count", s.repo.Count())
	return nil
}
