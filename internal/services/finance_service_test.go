package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spa-records/internal/models"
	"spa-records/internal/repositories"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	now          time.Time
	catalog      CatalogServiceInterface
	appointments AppointmentServiceInterface
	apptRepo     repositories.AppointmentRepositoryInterface
	expenses     models.ExpenseLedger
}

func (s *FinanceServiceTestSuite) SetupTest() {
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	s.catalog = NewCatalogService(repositories.NewCatalogRepository("EUR"))
	s.apptRepo = repositories.NewAppointmentRepository()
	s.appointments = NewAppointmentService(s.apptRepo, s.catalog, WithClock(func() time.Time { return s.now }))
	s.expenses = models.ExpenseLedger{
		"hot_water":   decimal.NewFromInt(200),
		"maintenance": decimal.NewFromInt(100),
	}
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}

func (s *FinanceServiceTestSuite) finance() FinanceServiceInterface {
	return NewFinanceService(s.catalog, s.appointments, repositories.NewExpenseRepository(s.expenses), "Panda Spa")
}

func (s *FinanceServiceTestSuite) addService(name string, price int64) {
	_, err := s.catalog.AddService("treatments", name, decimal.NewFromInt(price), 60, "", "")
	s.Require().NoError(err)
}

func (s *FinanceServiceTestSuite) book(phoneID int, service string, dateTime time.Time) {
	s.Require().NoError(s.apptRepo.Insert(models.Appointment{
		PhoneID:     phoneID,
		FirstName:   "red",
		LastName:    "fox",
		ServiceName: service,
		DateTime:    dateTime,
	}))
}

func (s *FinanceServiceTestSuite) TestTotalIncomeCountsPastAndFuture() {
	s.addService("stone_massage", 85)
	s.addService("green_tea", 35)

	s.book(21000001, "stone_massage", s.now.Add(-48*time.Hour))
	s.book(21000002, "stone_massage", s.now.Add(48*time.Hour))
	s.book(21000003, "green_tea", s.now.Add(72*time.Hour))

	income := s.finance().TotalIncome()
	s.True(income.Equal(decimal.NewFromInt(205)), "got %s", income)
}

func (s *FinanceServiceTestSuite) TestTotalIncomeSkipsDanglingReferences() {
	s.addService("stone_massage", 85)
	s.book(21000001, "stone_massage", s.now.Add(48*time.Hour))
	s.book(21000002, "removed_service", s.now.Add(72*time.Hour))

	// A booking whose service is gone contributes zero, silently.
	income := s.finance().TotalIncome()
	s.True(income.Equal(decimal.NewFromInt(85)), "got %s", income)
}

func (s *FinanceServiceTestSuite) TestProfitableReport() {
	s.addService("stone_massage", 200)
	s.book(21000001, "stone_massage", s.now.Add(24*time.Hour))
	s.book(21000002, "stone_massage", s.now.Add(48*time.Hour))

	report := s.finance().Report()

	s.Equal("Panda Spa", report.SpaName)
	s.Equal("EUR", report.Currency)
	s.True(report.TotalIncome.Equal(decimal.NewFromInt(400)))
	s.True(report.TotalExpenses.Equal(decimal.NewFromInt(300)))
	s.True(report.NetProfit.Equal(decimal.NewFromInt(100)))
	s.True(report.ProfitMargin.Equal(decimal.NewFromInt(25)), "got %s", report.ProfitMargin)
	s.Equal(models.StatusProfitable, report.Status)
	s.Equal(models.EfficiencyHigh, report.Efficiency)
}

func (s *FinanceServiceTestSuite) TestLossMakingReport() {
	s.addService("green_tea", 200)
	s.book(21000001, "green_tea", s.now.Add(24*time.Hour))

	report := s.finance().Report()

	s.True(report.NetProfit.Equal(decimal.NewFromInt(-100)))
	s.True(report.ProfitMargin.Equal(decimal.NewFromInt(-50)), "got %s", report.ProfitMargin)
	s.Equal(models.StatusLossMaking, report.Status)
	s.Equal(models.EfficiencyLossless, report.Efficiency)
}

func (s *FinanceServiceTestSuite) TestZeroIncomeReport() {
	// No bookings at all: the margin division is short-circuited to zero.
	report := s.finance().Report()

	s.True(report.TotalIncome.IsZero())
	s.True(report.NetProfit.Equal(decimal.NewFromInt(-300)))
	s.True(report.ProfitMargin.IsZero())
	s.Equal(models.StatusLossMaking, report.Status)
	s.Equal(models.EfficiencyZero, report.Efficiency)
}

func (s *FinanceServiceTestSuite) TestBreakEvenReport() {
	s.addService("stone_massage", 300)
	s.book(21000001, "stone_massage", s.now.Add(24*time.Hour))

	report := s.finance().Report()

	s.True(report.NetProfit.IsZero())
	s.True(report.ProfitMargin.IsZero())
	s.Equal(models.StatusBreakEven, report.Status)
	s.Equal(models.EfficiencyZero, report.Efficiency)
}
