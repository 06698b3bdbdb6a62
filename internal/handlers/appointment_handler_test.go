package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spa-records/internal/dto"
	"spa-records/internal/repositories"
	"spa-records/internal/services"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	now          time.Time
	appointments services.AppointmentServiceInterface
	handler      *AppointmentHandler
	dataDir      string
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)

	catalog := services.NewCatalogService(repositories.NewCatalogRepository("EUR"))
	for _, name := range []string{"stone_massage", "green_tea"} {
		_, err := catalog.AddService("treatments", name, decimal.NewFromInt(50), 60, "", "")
		s.Require().NoError(err)
	}

	s.appointments = services.NewAppointmentService(
		repositories.NewAppointmentRepository(),
		catalog,
		services.WithClock(func() time.Time { return s.now }),
	)

	s.dataDir = s.T().TempDir()
	s.handler = NewAppointmentHandler(s.appointments, noopMetrics{}, filepath.Join(s.dataDir, "appointments.json"))
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *AppointmentHandlerTestSuite) book(phoneID int, dateTime string) {
	_, err := s.appointments.AddAppointment(phoneID, "red", "fox", "stone_massage", dateTime)
	s.Require().NoError(err)
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	c, rec := s.jsonRequest(http.MethodPost, "/api/v1/appointments",
		`{"phone_id": 21098432, "first_name": "Red", "last_name": "Fox", "service_name": "stone_massage", "date_time": "2025-06-20 14:30"}`)

	s.Require().NoError(s.handler.CreateAppointment(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response struct {
		Data dto.AppointmentResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(21098432, response.Data.PhoneID)
	s.Equal("red", response.Data.FirstName)
	s.Equal("Red Fox", response.Data.FullName)
	s.Equal("Stone Massage", response.Data.ServiceDisplay)
	s.Equal("2025-06-20 14:30", response.Data.DateTime)
	s.False(response.Data.Past)
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointmentBadPhoneID() {
	c, rec := s.jsonRequest(http.MethodPost, "/api/v1/appointments",
		`{"phone_id": 123, "first_name": "red", "last_name": "fox", "service_name": "stone_massage", "date_time": "2025-06-20 14:30"}`)

	s.Require().NoError(s.handler.CreateAppointment(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("VALIDATION_005", body.Error.Code)
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointmentInPast() {
	c, rec := s.jsonRequest(http.MethodPost, "/api/v1/appointments",
		`{"phone_id": 21098432, "first_name": "red", "last_name": "fox", "service_name": "stone_massage", "date_time": "2025-06-01 10:00"}`)

	s.Require().NoError(s.handler.CreateAppointment(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("APPOINTMENT_004", body.Error.Code)
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointmentUnknownService() {
	c, rec := s.jsonRequest(http.MethodPost, "/api/v1/appointments",
		`{"phone_id": 21098432, "first_name": "red", "last_name": "fox", "service_name": "mud_bath", "date_time": "2025-06-20 14:30"}`)

	s.Require().NoError(s.handler.CreateAppointment(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("APPOINTMENT_003", body.Error.Code)
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	s.book(21098432, "2025-06-20 14:30")

	c, rec := s.jsonRequest(http.MethodGet, "/", "")
	c.SetParamNames("phone_id")
	c.SetParamValues("21098432")

	s.Require().NoError(s.handler.GetAppointment(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AppointmentHandlerTestSuite) TestGetAppointmentNonIntegerParam() {
	c, rec := s.jsonRequest(http.MethodGet, "/", "")
	c.SetParamNames("phone_id")
	c.SetParamValues("abc")

	s.Require().NoError(s.handler.GetAppointment(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("VALIDATION_003", body.Error.Code)
}

func (s *AppointmentHandlerTestSuite) TestGetAppointmentNotFound() {
	c, rec := s.jsonRequest(http.MethodGet, "/", "")
	c.SetParamNames("phone_id")
	c.SetParamValues("29999999")

	s.Require().NoError(s.handler.GetAppointment(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AppointmentHandlerTestSuite) TestUpdateAppointment() {
	s.book(21098432, "2025-06-20 14:30")

	c, rec := s.jsonRequest(http.MethodPatch, "/", `{"service_name": "green_tea"}`)
	c.SetParamNames("phone_id")
	c.SetParamValues("21098432")

	s.Require().NoError(s.handler.UpdateAppointment(c))
	s.Equal(http.StatusOK, rec.Code)

	appt, err := s.appointments.FindAppointment(21098432)
	s.Require().NoError(err)
	s.Equal("green_tea", appt.ServiceName)
	s.Equal("red", appt.FirstName)
}

func (s *AppointmentHandlerTestSuite) TestDeleteAppointment() {
	s.book(21098432, "2025-06-20 14:30")

	c, rec := s.jsonRequest(http.MethodDelete, "/", "")
	c.SetParamNames("phone_id")
	c.SetParamValues("21098432")

	s.Require().NoError(s.handler.DeleteAppointment(c))
	s.Equal(http.StatusOK, rec.Code)

	_, err := s.appointments.FindAppointment(21098432)
	s.Error(err)
}

func (s *AppointmentHandlerTestSuite) TestListAppointmentsGroupsByDate() {
	s.book(21000001, "2025-06-20 14:30")
	s.book(21000002, "2025-06-20 09:00")
	s.book(21000003, "2025-06-21 10:00")

	c, rec := s.jsonRequest(http.MethodGet, "/api/v1/appointments", "")

	s.Require().NoError(s.handler.ListAppointments(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.AppointmentListResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(3, response.Data.Total)
	s.Require().Len(response.Data.Days, 2)
	s.Equal("2025-06-20", response.Data.Days[0].Date)
	s.Len(response.Data.Days[0].Appointments, 2)
	s.Equal(21000002, response.Data.Days[0].Appointments[0].PhoneID, "earlier time first within the day")
	s.Equal("2025-06-21", response.Data.Days[1].Date)
}

func (s *AppointmentHandlerTestSuite) TestSaveAndLoadAppointments() {
	s.book(21098432, "2025-06-20 14:30")

	c, rec := s.jsonRequest(http.MethodPost, "/api/v1/appointments/save", `{}`)
	s.Require().NoError(s.handler.SaveAppointments(c))
	s.Equal(http.StatusOK, rec.Code)

	s.Require().NoError(s.appointments.RemoveAppointment(21098432))

	c, rec = s.jsonRequest(http.MethodPost, "/api/v1/appointments/load", `{}`)
	s.Require().NoError(s.handler.LoadAppointments(c))
	s.Equal(http.StatusOK, rec.Code)

	appt, err := s.appointments.FindAppointment(21098432)
	s.Require().NoError(err)
	s.Equal("stone_massage", appt.ServiceName)
}
