package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spa-records/internal/models"
	"spa-records/internal/repositories"
	"spa-records/internal/validation"
)

type AppointmentServiceTestSuite struct {
	suite.Suite
	now     time.Time
	repo    repositories.AppointmentRepositoryInterface
	service AppointmentServiceInterface
}

func (s *AppointmentServiceTestSuite) SetupTest() {
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	s.repo = repositories.NewAppointmentRepository()

	catalogRepo := repositories.NewCatalogRepository("EUR")
	catalog := NewCatalogService(catalogRepo)
	for _, name := range []string{"stone_massage", "green_tea", "aroma_bath"} {
		_, err := catalog.AddService("treatments", name, decimal.NewFromInt(50), 60, "", "")
		s.Require().NoError(err)
	}

	s.service = NewAppointmentService(s.repo, catalog, WithClock(func() time.Time { return s.now }))
}

func TestAppointmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}

func (s *AppointmentServiceTestSuite) TestAddAppointment() {
	appt, err := s.service.AddAppointment(21098432, "Red", "Fox", "Stone Massage", "2025-06-20 14:30")
	s.Require().NoError(err)

	s.Equal("red", appt.FirstName, "names are stored lower-cased")
	s.Equal("fox", appt.LastName)
	s.Equal("stone_massage", appt.ServiceName, "service is stored in slug form")
	s.True(appt.DateTime.Equal(time.Date(2025, time.June, 20, 14, 30, 0, 0, time.Local)))

	stored, err := s.service.FindAppointment(21098432)
	s.Require().NoError(err)
	s.Equal(appt.ServiceName, stored.ServiceName)
}

func (s *AppointmentServiceTestSuite) TestAddAcceptsAllDateLayouts() {
	layoutInputs := map[int]string{
		21000001: "2025-06-20 14:30",
		21000002: "20-06-2025 14:30",
		21000003: "20/06/2025 14:30",
	}

	expected := time.Date(2025, time.June, 20, 14, 30, 0, 0, time.Local)
	for phoneID, input := range layoutInputs {
		appt, err := s.service.AddAppointment(phoneID, "red", "fox", "green_tea", input)
		s.Require().NoError(err, "input %q", input)
		s.True(expected.Equal(appt.DateTime), "input %q", input)
	}
}

func (s *AppointmentServiceTestSuite) TestAddValidationOrder() {
	// Phone ID first.
	_, err := s.service.AddAppointment(-21098432, "red", "fox", "stone_massage", "2025-06-20 14:30")
	s.ErrorIs(err, validation.ErrNegativeNumber)

	_, err = s.service.AddAppointment(123, "red", "fox", "stone_massage", "2025-06-20 14:30")
	s.ErrorIs(err, validation.ErrWrongLength)

	// Unknown service beats a bad date.
	_, err = s.service.AddAppointment(21098432, "red", "fox", "mud_bath", "not a date")
	s.ErrorIs(err, ErrUnknownService)

	// Bad date beats pastness.
	_, err = s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "not a date")
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *AppointmentServiceTestSuite) TestAddRejectsPast() {
	_, err := s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "2025-06-15 11:59")
	s.ErrorIs(err, ErrPastAppointment)

	// One minute ahead of the pinned clock is fine.
	_, err = s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "2025-06-15 12:01")
	s.NoError(err)
}

func (s *AppointmentServiceTestSuite) TestAddDuplicatePhoneID() {
	_, err := s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "2025-06-20 14:30")
	s.Require().NoError(err)

	_, err = s.service.AddAppointment(21098432, "pale", "fox", "green_tea", "2025-06-21 10:00")
	s.ErrorIs(err, repositories.ErrDuplicateAppointment)
}

func (s *AppointmentServiceTestSuite) TestUpdateSparsePatch() {
	_, err := s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "2025-06-20 14:30")
	s.Require().NoError(err)

	newService := "Green Tea"
	updated, err := s.service.UpdateAppointment(21098432, models.AppointmentPatch{ServiceName: &newService})
	s.Require().NoError(err)

	s.Equal("green_tea", updated.ServiceName)
	s.Equal("red", updated.FirstName, "unpatched fields survive")
	s.True(updated.DateTime.Equal(time.Date(2025, time.June, 20, 14, 30, 0, 0, time.Local)))
}

func (s *AppointmentServiceTestSuite) TestUpdateFailureWritesNothing() {
	_, err := s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "2025-06-20 14:30")
	s.Require().NoError(err)

	// Valid name change combined with an invalid date: the whole patch must
	// be discarded.
	name := "blue"
	badDate := "not a date"
	_, err = s.service.UpdateAppointment(21098432, models.AppointmentPatch{
		FirstName: &name,
		DateTime:  &badDate,
	})
	s.ErrorIs(err, ErrInvalidDate)

	stored, _ := s.service.FindAppointment(21098432)
	s.Equal("red", stored.FirstName)

	// Same for a patch naming an unknown service.
	unknown := "mud_bath"
	_, err = s.service.UpdateAppointment(21098432, models.AppointmentPatch{
		FirstName:   &name,
		ServiceName: &unknown,
	})
	s.ErrorIs(err, ErrUnknownService)

	stored, _ = s.service.FindAppointment(21098432)
	s.Equal("red", stored.FirstName)

	// And for a patched date in the past.
	pastDate := "2025-06-01 10:00"
	_, err = s.service.UpdateAppointment(21098432, models.AppointmentPatch{DateTime: &pastDate})
	s.ErrorIs(err, ErrPastAppointment)
}

func (s *AppointmentServiceTestSuite) TestUpdateUnknownPhoneID() {
	name := "blue"
	_, err := s.service.UpdateAppointment(29999999, models.AppointmentPatch{FirstName: &name})
	s.ErrorIs(err, repositories.ErrAppointmentNotFound)
}

func (s *AppointmentServiceTestSuite) TestRemoveAppointment() {
	_, err := s.service.AddAppointment(21098432, "red", "fox", "stone_massage", "2025-06-20 14:30")
	s.Require().NoError(err)

	s.NoError(s.service.RemoveAppointment(21098432))
	s.ErrorIs(s.service.RemoveAppointment(21098432), repositories.ErrAppointmentNotFound)
	s.ErrorIs(s.service.RemoveAppointment(123), validation.ErrWrongLength)
}

func (s *AppointmentServiceTestSuite) TestListAppointments() {
	// Seed via the repository so a past appointment can exist.
	s.Require().NoError(s.repo.Insert(models.Appointment{
		PhoneID: 21000001, FirstName: "red", LastName: "fox",
		ServiceName: "stone_massage", DateTime: s.now.Add(-48 * time.Hour),
	}))

	_, err := s.service.AddAppointment(21000002, "pale", "fox", "green_tea", "2025-06-17 09:00")
	s.Require().NoError(err)
	_, err = s.service.AddAppointment(21000003, "snow", "leopard", "aroma_bath", "2025-06-16 09:00")
	s.Require().NoError(err)

	upcoming := s.service.ListAppointments(false)
	s.Require().Len(upcoming, 2)
	s.Equal(21000003, upcoming[0].PhoneID, "sorted by date-time, not phone ID")
	s.Equal(21000002, upcoming[1].PhoneID)

	all := s.service.ListAppointments(true)
	s.Require().Len(all, 3)
	s.Equal(21000001, all[0].PhoneID, "past entry sorts first")
}
