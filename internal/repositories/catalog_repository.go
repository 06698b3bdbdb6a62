package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"spa-records/internal/format"
	"spa-records/internal/models"
)

// catalogRepository holds the category -> service -> attributes mapping in
// memory. The RWMutex guards the maps against the concurrent HTTP listener;
// business-level invariants are still enforced one operation at a time by the
// owning service.
type catalogRepository struct {
	mu              sync.RWMutex
	services        map[string]map[string]models.Service
	defaultCurrency string
}

// NewCatalogRepository creates an empty catalog with the given default
// currency.
func NewCatalogRepository(defaultCurrency string) CatalogRepositoryInterface {
	return &catalogRepository{
		services:        make(map[string]map[string]models.Service),
		defaultCurrency: defaultCurrency,
	}
}

func (r *catalogRepository) DefaultCurrency() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultCurrency
}

// findLocked locates a service by slug across all categories. Caller holds
// the lock.
func (r *catalogRepository) findLocked(name string) (string, *models.Service, bool) {
	slug := format.Slug(name)
	for category, services := range r.services {
		for serviceName, svc := range services {
			if format.Slug(serviceName) == slug {
				found := svc
				return category, &found, true
			}
		}
	}
	return "", nil, false
}

// Find locates a service by name across all categories and returns the owning
// category plus a copy of the service data. Lookup is case-insensitive and
// tolerant of space/underscore variants.
func (r *catalogRepository) Find(name string) (string, *models.Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(name)
}

// Get returns a copy of one service addressed by category and slug. Unlike
// Find it never crosses category boundaries, so a cross-category duplicate
// slug cannot shadow the requested entry.
func (r *catalogRepository) Get(category, name string) (*models.Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slug := format.Slug(name)
	for serviceName, svc := range r.services[format.Slug(category)] {
		if format.Slug(serviceName) == slug {
			found := svc
			return &found, true
		}
	}
	return nil, false
}

func (r *catalogRepository) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, _, found := r.findLocked(name)
	return found
}

// Insert adds a service to a category, creating the category on first use.
// The same slug twice within one category is ErrDuplicateService;
// cross-category duplicates are legal and independent.
func (r *catalogRepository) Insert(category string, svc models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[category]; !ok {
		r.services[category] = make(map[string]models.Service)
	}

	if _, ok := r.services[category][svc.Name]; ok {
		return fmt.Errorf("%w: %q in %q", ErrDuplicateService, svc.Name, category)
	}

	if svc.Currency == "" {
		svc.Currency = r.defaultCurrency
	}
	svc.Category = category
	r.services[category][svc.Name] = svc

	return nil
}

// Apply mutates one service addressed by category and slug under a single
// write lock. The mutation function receives a copy that is written back
// wholesale, so a failed caller-side validation must happen before Apply.
func (r *catalogRepository) Apply(category, name string, fn func(*models.Service)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	services, ok := r.services[category]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	svc, ok := services[name]
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrServiceNotFound, name, category)
	}

	fn(&svc)
	services[name] = svc

	return nil
}

// ApplyByName mutates one service located by slug across all categories.
func (r *catalogRepository) ApplyByName(name string, fn func(*models.Service)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slug := format.Slug(name)
	for _, services := range r.services {
		for serviceName, svc := range services {
			if format.Slug(serviceName) == slug {
				fn(&svc)
				services[serviceName] = svc
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %q", ErrServiceNotFound, name)
}

// Remove deletes a service located by slug and returns the category it was
// removed from.
func (r *catalogRepository) Remove(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slug := format.Slug(name)
	for category, services := range r.services {
		for serviceName := range services {
			if format.Slug(serviceName) == slug {
				delete(services, serviceName)
				return category, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %q", ErrServiceNotFound, name)
}

// SetCurrencyForAll rewrites every service currency and the catalog default
// in one atomic pass under the write lock.
func (r *catalogRepository) SetCurrencyForAll(currency string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, services := range r.services {
		for name, svc := range services {
			svc.Currency = currency
			services[name] = svc
		}
	}
	r.defaultCurrency = currency
}

// Listing returns the full catalog grouped by category, both levels sorted by
// name. The result is a copy and safe to hand out.
func (r *catalogRepository) Listing() []models.CategoryListing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]string, 0, len(r.services))
	for category := range r.services {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	listing := make([]models.CategoryListing, 0, len(categories))
	for _, category := range categories {
		names := make([]string, 0, len(r.services[category]))
		for name := range r.services[category] {
			names = append(names, name)
		}
		sort.Strings(names)

		services := make([]models.Service, 0, len(names))
		for _, name := range names {
			services = append(services, r.services[category][name])
		}
		listing = append(listing, models.CategoryListing{Category: category, Services: services})
	}

	return listing
}

func (r *catalogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, services := range r.services {
		total += len(services)
	}
	return total
}

// ReplaceAll swaps in a whole new catalog, reapplying the default currency to
// every entry.
func (r *catalogRepository) ReplaceAll(data map[string]map[string]models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services = make(map[string]map[string]models.Service, len(data))
	for category, services := range data {
		r.services[category] = make(map[string]models.Service, len(services))
		for name, svc := range services {
			svc.Name = name
			svc.Category = category
			svc.Currency = r.defaultCurrency
			r.services[category][name] = svc
		}
	}
}

// serviceDocument is the on-disk JSON shape of one service. Price is a plain
// number in the file.
type serviceDocument struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}

// SaveToFile writes the whole catalog as nested JSON:
// {category: {service: {price, currency, duration, description}}}.
func (r *catalogRepository) SaveToFile(path string) error {
	r.mu.RLock()
	document := make(map[string]map[string]serviceDocument, len(r.services))
	for category, services := range r.services {
		document[category] = make(map[string]serviceDocument, len(services))
		for name, svc := range services {
			document[category][name] = serviceDocument{
				Price:       svc.Price.InexactFloat64(),
				Currency:    svc.Currency,
				Duration:    svc.Duration,
				Description: svc.Description,
			}
		}
	}
	r.mu.RUnlock()

	data, err := json.MarshalIndent(document, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

// LoadFromFile replaces the in-memory catalog with the file contents. The
// default currency is reapplied to every loaded entry, overwriting whatever
// currency the file held.
func (r *catalogRepository) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("%w: %s", ErrMalformedJSON, path)
	}

	var document map[string]map[string]serviceDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStructure, path)
	}

	loaded := make(map[string]map[string]models.Service, len(document))
	for category, services := range document {
		loaded[category] = make(map[string]models.Service, len(services))
		for name, doc := range services {
			loaded[category][name] = models.Service{
				Name:        name,
				Category:    category,
				Price:       decimal.NewFromFloat(doc.Price),
				Duration:    doc.Duration,
				Description: doc.Description,
			}
		}
	}

	r.ReplaceAll(loaded)
	return nil
}
