package seed

import (
	"strings"
	"time"

	"spa-records/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAppointments generates count appointments with fake customer names,
// each booked for one of the given services. Phone IDs are unique 8 digit
// numbers, times spread over the two weeks around now.
func RandomAppointments(now time.Time, count int, serviceNames []string) []models.Appointment {
	if len(serviceNames) == 0 || count <= 0 {
		return nil
	}

	appointments := make([]models.Appointment, 0, count)
	used := make(map[int]bool, count)

	for len(appointments) < count {
		phoneID := gofakeit.Number(20000000, 29999999)
		if used[phoneID] {
			continue
		}
		used[phoneID] = true

		offset := time.Duration(gofakeit.Number(-7*24, 14*24)) * time.Hour
		appointments = append(appointments, models.Appointment{
			PhoneID:     phoneID,
			FirstName:   strings.ToLower(gofakeit.FirstName()),
			LastName:    strings.ToLower(gofakeit.LastName()),
			ServiceName: serviceNames[gofakeit.Number(0, len(serviceNames)-1)],
			DateTime:    now.Add(offset),
		})
	}

	return appointments
}
