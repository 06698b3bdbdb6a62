package services

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"spa-records/internal/format"
	"spa-records/internal/models"
	"spa-records/internal/repositories"
)

type catalogService struct {
	repo repositories.CatalogRepositoryInterface
}

// NewCatalogService creates the catalog manager over its repository.
func NewCatalogService(repo repositories.CatalogRepositoryInterface) CatalogServiceInterface {
	return &catalogService{repo: repo}
}

// AddService validates and stores a new service. The category is auto-created
// on first use; an empty currency takes the catalog default.
func (s *catalogService) AddService(category, name string, price decimal.Decimal, duration int, description, currency string) (*models.Service, error) {
	svc := models.Service{
		Name:        format.Slug(name),
		Price:       price,
		Currency:    currency,
		Duration:    duration,
		Description: description,
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}

	categorySlug := format.Slug(category)
	if err := s.repo.Insert(categorySlug, svc); err != nil {
		return nil, err
	}

	slog.Info("service added",
		"category", categorySlug,
		"service", svc.Name,
		"price", price.String())

	// Read back scoped to the target category: a legal duplicate slug in
	// another category must not leak into the response.
	stored, found := s.repo.Get(categorySlug, svc.Name)
	if !found {
		return nil, fmt.Errorf("%w: %q in %q", repositories.ErrServiceNotFound, svc.Name, categorySlug)
	}
	return stored, nil
}

// UpdateService applies a partial update to a service addressed by category
// and name. Every supplied field is validated before anything is written.
func (s *catalogService) UpdateService(category, name string, patch models.ServicePatch) (*models.Service, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	categorySlug := format.Slug(category)
	nameSlug := format.Slug(name)

	err := s.repo.Apply(categorySlug, nameSlug, func(svc *models.Service) {
		if patch.Price != nil {
			svc.Price = *patch.Price
		}
		if patch.Duration != nil {
			svc.Duration = *patch.Duration
		}
		if patch.Description != nil {
			svc.Description = *patch.Description
		}
		if patch.Currency != nil {
			svc.Currency = *patch.Currency
		}
	})
	if err != nil {
		return nil, err
	}

	slog.Info("service updated", "category", categorySlug, "service", nameSlug)

	svc, found := s.repo.Get(categorySlug, nameSlug)
	if !found {
		return nil, fmt.Errorf("%w: %q in %q", repositories.ErrServiceNotFound, nameSlug, categorySlug)
	}
	return svc, nil
}

// GetService returns the raw service data for a name, located across all
// categories with slug-tolerant matching. The result is a read-only snapshot.
func (s *catalogService) GetService(name string) (*models.Service, error) {
	_, svc, found := s.repo.Find(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", repositories.ErrServiceNotFound, name)
	}
	return svc, nil
}

// FindService returns a formatted text description of a service.
func (s *catalogService) FindService(name string) (string, error) {
	svc, err := s.GetService(name)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n  Price: %s %s\n  Duration: %d min\n  Description: %s",
		format.DisplayName(svc.Name),
		svc.Price.StringFixed(2),
		svc.Currency,
		svc.Duration,
		svc.Description,
	), nil
}

// RemoveService deletes a service by name and returns the display form of
// the category it was removed from. Appointments referencing the service are
// left untouched; there is no cascade.
func (s *catalogService) RemoveService(name string) (string, error) {
	category, err := s.repo.Remove(name)
	if err != nil {
		return "", err
	}

	slog.Info("service removed", "service", format.Slug(name), "category", category)
	return format.DisplayName(category), nil
}

// SetServicePrice patches the price and/or currency of a service located by
// name.
func (s *catalogService) SetServicePrice(name string, price *decimal.Decimal, currency *string) (*models.Service, error) {
	if price != nil && price.IsNegative() {
		return nil, models.ErrNegativePrice
	}

	err := s.repo.ApplyByName(name, func(svc *models.Service) {
		if price != nil {
			svc.Price = *price
		}
		if currency != nil {
			svc.Currency = *currency
		}
	})
	if err != nil {
		return nil, err
	}

	_, svc, _ := s.repo.Find(name)
	slog.Info("service price updated",
		"service", svc.Name,
		"price", svc.Price.String(),
		"currency", svc.Currency)
	return svc, nil
}

// ChangeCurrencyForAll rewrites the currency of every service plus the
// catalog default as one atomic operation.
func (s *catalogService) ChangeCurrencyForAll(currency string) error {
	s.repo.SetCurrencyForAll(currency)
	slog.Info("currency changed for all services", "currency", currency)
	return nil
}

func (s *catalogService) ServiceExists(name string) bool {
	return s.repo.Exists(name)
}

func (s *catalogService) ListCatalog() []models.CategoryListing {
	return s.repo.Listing()
}

func (s *catalogService) DefaultCurrency() string {
	return s.repo.DefaultCurrency()
}

func (s *catalogService) SaveToJSON(path string) error {
	if err := s.repo.SaveToFile(path); err != nil {
		slog.Error("failed to save catalog", "path", path, "error", err)
		return err
	}

	slog.Info("catalog saved", "path", path, "services", s.repo.Count())
	return nil
}

func (s *catalogService) LoadFromJSON(path string) error {
	if err := s.repo.LoadFromFile(path); err != nil {
		slog.Error("failed to load catalog", "path", path, "error", err)
		return err
	}

	slog.Info("catalog loaded", "path", path, "services", s.repo.Count())
	return nil
}
