package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"sync"

	"spa-records/internal/format"
	"spa-records/internal/models"
)

// appointmentRepository holds the phone-id -> appointment mapping in memory.
// The RWMutex guards the map against the concurrent HTTP listener.
type appointmentRepository struct {
	mu           sync.RWMutex
	appointments map[int]models.Appointment
}

// NewAppointmentRepository creates an empty appointment store.
func NewAppointmentRepository() AppointmentRepositoryInterface {
	return &appointmentRepository{
		appointments: make(map[int]models.Appointment),
	}
}

// Get returns a copy of the appointment for the given phone ID.
func (r *appointmentRepository) Get(phoneID int) (*models.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.appointments[phoneID]
	if !ok {
		return nil, false
	}
	return &appt, true
}

// Insert adds a new appointment. A phone ID already present is
// ErrDuplicateAppointment.
func (r *appointmentRepository) Insert(appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[appt.PhoneID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateAppointment, appt.PhoneID)
	}

	r.appointments[appt.PhoneID] = appt
	return nil
}

// Update replaces an existing appointment wholesale. The caller validates the
// replacement before handing it in, keeping failed updates free of partial
// writes.
func (r *appointmentRepository) Update(appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[appt.PhoneID]; !ok {
		return fmt.Errorf("%w: %d", ErrAppointmentNotFound, appt.PhoneID)
	}

	r.appointments[appt.PhoneID] = appt
	return nil
}

// Remove deletes the appointment for the given phone ID.
func (r *appointmentRepository) Remove(phoneID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[phoneID]; !ok {
		return fmt.Errorf("%w: %d", ErrAppointmentNotFound, phoneID)
	}

	delete(r.appointments, phoneID)
	return nil
}

// List returns all appointments sorted ascending by phone ID. This fixed
// iteration order is what makes "first encountered" deterministic for the
// popularity counting downstream.
func (r *appointmentRepository) List() []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.appointments))
	for id := range r.appointments {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]models.Appointment, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.appointments[id])
	}
	return result
}

func (r *appointmentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.appointments)
}

// ReplaceAll swaps in a whole new appointment mapping.
func (r *appointmentRepository) ReplaceAll(data map[int]models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = make(map[int]models.Appointment, len(data))
	for id, appt := range data {
		appt.PhoneID = id
		r.appointments[id] = appt
	}
}

// appointmentDocument is the on-disk JSON shape of one appointment. The
// timestamp is rendered as YYYY-MM-DD HH:MM:SS text.
type appointmentDocument struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	ServiceName string `json:"service_name"`
	DateTime    string `json:"date_time"`
}

// SaveToFile writes the full mapping as a JSON object keyed by the
// decimal-string phone ID.
func (r *appointmentRepository) SaveToFile(path string) error {
	r.mu.RLock()
	document := make(map[string]appointmentDocument, len(r.appointments))
	for id, appt := range r.appointments {
		document[strconv.Itoa(id)] = appointmentDocument{
			FirstName:   appt.FirstName,
			LastName:    appt.LastName,
			ServiceName: appt.ServiceName,
			DateTime:    format.FormatTimestamp(appt.DateTime),
		}
	}
	r.mu.RUnlock()

	data, err := json.MarshalIndent(document, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode appointments: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write appointments file: %w", err)
	}

	return nil
}

// LoadFromFile replaces the in-memory store with the file contents, not
// merged: whatever was in memory before is gone afterwards.
func (r *appointmentRepository) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to read appointments file: %w", err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("%w: %s", ErrMalformedJSON, path)
	}

	var document map[string]appointmentDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStructure, path)
	}

	loaded := make(map[int]models.Appointment, len(document))
	for key, doc := range document {
		phoneID, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("%w: non-numeric phone ID key %q", ErrInvalidStructure, key)
		}

		dateTime, err := format.ParseTimestamp(doc.DateTime)
		if err != nil {
			return fmt.Errorf("%w: bad date_time for phone ID %s", ErrInvalidStructure, key)
		}

		loaded[phoneID] = models.Appointment{
			PhoneID:     phoneID,
			FirstName:   doc.FirstName,
			LastName:    doc.LastName,
			ServiceName: doc.ServiceName,
			DateTime:    dateTime,
		}
	}

	r.ReplaceAll(loaded)
	return nil
}
