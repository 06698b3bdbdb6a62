package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-records/internal/validation"
)

func TestCatalog_AllServicesValid(t *testing.T) {
	services := Catalog()
	require.NotEmpty(t, services)

	seen := make(map[string]bool)
	for _, svc := range services {
		assert.False(t, seen[svc.Name], "duplicate service %s", svc.Name)
		seen[svc.Name] = true

		assert.Regexp(t, `^[a-z][a-z0-9_]*$`, svc.Name)
		assert.True(t, svc.Price.GreaterThan(decimal.Zero), "%s price", svc.Name)
		assert.Positive(t, svc.Duration, "%s duration", svc.Name)
		assert.Equal(t, DefaultCurrency, svc.Currency)
		assert.NotEmpty(t, svc.Description)
	}
}

func TestExpenses_Total(t *testing.T) {
	ledger := Expenses()
	assert.True(t, ledger.Total().Equal(decimal.NewFromInt(650)))
}

func TestAppointments_ReferenceOnlyCatalogServices(t *testing.T) {
	known := make(map[string]bool)
	for _, svc := range Catalog() {
		known[svc.Name] = true
	}

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	appointments := Appointments(now)
	require.NotEmpty(t, appointments)

	var past, upcoming int
	seen := make(map[int]bool)
	for _, appt := range appointments {
		assert.NoError(t, validation.ValidatePhoneID(appt.PhoneID))
		assert.False(t, seen[appt.PhoneID], "duplicate phone ID %d", appt.PhoneID)
		seen[appt.PhoneID] = true
		assert.True(t, known[appt.ServiceName], "unknown service %s", appt.ServiceName)

		if appt.DateTime.Before(now) {
			past++
		} else {
			upcoming++
		}
	}

	// The demo book always spans both sides of now
	assert.Positive(t, past)
	assert.Positive(t, upcoming)
}

func TestRandomAppointments(t *testing.T) {
	services := []string{"classic_bath", "green_tea"}
	now := time.Now()

	appointments := RandomAppointments(now, 10, services)
	require.Len(t, appointments, 10)

	seen := make(map[int]bool)
	for _, appt := range appointments {
		assert.NoError(t, validation.ValidatePhoneID(appt.PhoneID))
		assert.False(t, seen[appt.PhoneID])
		seen[appt.PhoneID] = true
		assert.Contains(t, services, appt.ServiceName)
		assert.Equal(t, strings.ToLower(appt.FirstName), appt.FirstName)
		assert.Equal(t, strings.ToLower(appt.LastName), appt.LastName)
	}
}

func TestRandomAppointments_EmptyInputs(t *testing.T) {
	assert.Nil(t, RandomAppointments(time.Now(), 5, nil))
	assert.Nil(t, RandomAppointments(time.Now(), 0, []string{"green_tea"}))
}
