package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spa-records/internal/models"
	"spa-records/internal/repositories"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	service CatalogServiceInterface
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.service = NewCatalogService(repositories.NewCatalogRepository("EUR"))
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) addStoneMassage() {
	_, err := s.service.AddService("massages", "Stone Massage", decimal.NewFromInt(85), 60, "Hot stone massage.", "")
	s.Require().NoError(err)
}

func (s *CatalogServiceTestSuite) TestAddService() {
	s.addStoneMassage()

	svc, err := s.service.GetService("stone_massage")
	s.Require().NoError(err)
	s.Equal("stone_massage", svc.Name, "display input is stored in slug form")
	s.Equal("massages", svc.Category)
	s.Equal("EUR", svc.Currency, "empty currency takes the catalog default")
	s.True(svc.Price.Equal(decimal.NewFromInt(85)))
}

func (s *CatalogServiceTestSuite) TestAddServiceRejectsBadValues() {
	_, err := s.service.AddService("massages", "mud_bath", decimal.NewFromInt(-5), 30, "", "")
	s.ErrorIs(err, models.ErrNegativePrice)

	_, err = s.service.AddService("massages", "mud_bath", decimal.NewFromInt(50), 0, "", "")
	s.ErrorIs(err, models.ErrInvalidDuration)

	s.False(s.service.ServiceExists("mud_bath"), "nothing is stored on validation failure")
}

func (s *CatalogServiceTestSuite) TestAddCrossCategoryDuplicateSlug() {
	s.addStoneMassage()

	// The same slug in another category is legal and independent; the create
	// response must describe the new record, not the massages one.
	svc, err := s.service.AddService("promotions", "stone_massage", decimal.NewFromInt(60), 30, "Intro offer.", "")
	s.Require().NoError(err)
	s.Equal("promotions", svc.Category)
	s.True(svc.Price.Equal(decimal.NewFromInt(60)))
	s.Equal(30, svc.Duration)
	s.Equal("Intro offer.", svc.Description)
}

func (s *CatalogServiceTestSuite) TestUpdateCrossCategoryDuplicateSlug() {
	s.addStoneMassage()
	_, err := s.service.AddService("promotions", "stone_massage", decimal.NewFromInt(60), 30, "Intro offer.", "")
	s.Require().NoError(err)

	duration := 45
	svc, err := s.service.UpdateService("promotions", "stone_massage", models.ServicePatch{Duration: &duration})
	s.Require().NoError(err)
	s.Equal("promotions", svc.Category)
	s.Equal(45, svc.Duration)
	s.True(svc.Price.Equal(decimal.NewFromInt(60)))

	massage, err := s.service.UpdateService("massages", "stone_massage", models.ServicePatch{})
	s.Require().NoError(err)
	s.Equal(60, massage.Duration, "the massages record is untouched")
}

func (s *CatalogServiceTestSuite) TestAddDuplicate() {
	s.addStoneMassage()

	_, err := s.service.AddService("massages", "stone_massage", decimal.NewFromInt(90), 30, "", "")
	s.ErrorIs(err, repositories.ErrDuplicateService)
}

func (s *CatalogServiceTestSuite) TestAddThenFindConsistency() {
	s.addStoneMassage()

	// Every lookup shape resolves the same record.
	s.True(s.service.ServiceExists("stone_massage"))
	s.True(s.service.ServiceExists("Stone Massage"))

	text, err := s.service.FindService("Stone Massage")
	s.Require().NoError(err)
	s.Contains(text, "Stone Massage")
	s.Contains(text, "85.00 EUR")
	s.Contains(text, "60 min")
}

func (s *CatalogServiceTestSuite) TestUpdateService() {
	s.addStoneMassage()

	price := decimal.NewFromInt(95)
	duration := 75
	svc, err := s.service.UpdateService("massages", "stone_massage", models.ServicePatch{
		Price:    &price,
		Duration: &duration,
	})
	s.Require().NoError(err)
	s.True(svc.Price.Equal(price))
	s.Equal(75, svc.Duration)
	s.Equal("Hot stone massage.", svc.Description, "untouched fields survive")
}

func (s *CatalogServiceTestSuite) TestUpdateRejectedBeforeWrite() {
	s.addStoneMassage()

	badPrice := decimal.NewFromInt(-1)
	goodDuration := 90
	_, err := s.service.UpdateService("massages", "stone_massage", models.ServicePatch{
		Price:    &badPrice,
		Duration: &goodDuration,
	})
	s.ErrorIs(err, models.ErrNegativePrice)

	svc, _ := s.service.GetService("stone_massage")
	s.Equal(60, svc.Duration, "a rejected patch writes nothing, not even its valid fields")
}

func (s *CatalogServiceTestSuite) TestUpdateUnknownService() {
	price := decimal.NewFromInt(10)
	_, err := s.service.UpdateService("massages", "mud_bath", models.ServicePatch{Price: &price})
	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}

func (s *CatalogServiceTestSuite) TestRemoveService() {
	s.addStoneMassage()

	category, err := s.service.RemoveService("Stone Massage")
	s.Require().NoError(err)
	s.Equal("Massages", category)
	s.False(s.service.ServiceExists("stone_massage"))

	_, err = s.service.RemoveService("stone_massage")
	s.ErrorIs(err, repositories.ErrServiceNotFound)
}

func (s *CatalogServiceTestSuite) TestSetServicePrice() {
	s.addStoneMassage()

	price := decimal.NewFromFloat(99.50)
	currency := "USD"
	svc, err := s.service.SetServicePrice("stone_massage", &price, &currency)
	s.Require().NoError(err)
	s.True(svc.Price.Equal(price))
	s.Equal("USD", svc.Currency)

	negative := decimal.NewFromInt(-1)
	_, err = s.service.SetServicePrice("stone_massage", &negative, nil)
	s.ErrorIs(err, models.ErrNegativePrice)
}

func (s *CatalogServiceTestSuite) TestChangeCurrencyForAll() {
	s.addStoneMassage()
	_, err := s.service.AddService("tea_therapy", "green_tea", decimal.NewFromInt(35), 30, "", "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.ChangeCurrencyForAll("GBP"))

	s.Equal("GBP", s.service.DefaultCurrency())
	for _, listing := range s.service.ListCatalog() {
		for _, svc := range listing.Services {
			s.Equal("GBP", svc.Currency)
		}
	}
}
