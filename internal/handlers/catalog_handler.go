package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"spa-records/internal/dto"
	"spa-records/internal/errors"
	"spa-records/internal/format"
	"spa-records/internal/models"
	"spa-records/internal/services"
)

// CatalogHandler handles service-catalog HTTP requests
type CatalogHandler struct {
	catalog     services.CatalogServiceInterface
	metrics     services.MetricsRecorderInterface
	spaName     string
	defaultPath string
}

// NewCatalogHandler creates a new catalog handler. defaultPath is the
// services JSON file used when a persistence request names no file.
func NewCatalogHandler(
	catalog services.CatalogServiceInterface,
	metrics services.MetricsRecorderInterface,
	spaName string,
	defaultPath string,
) *CatalogHandler {
	return &CatalogHandler{
		catalog:     catalog,
		metrics:     metrics,
		spaName:     spaName,
		defaultPath: defaultPath,
	}
}

// ListCatalog returns the full catalog grouped by category
func (h *CatalogHandler) ListCatalog(c echo.Context) error {
	listing := h.catalog.ListCatalog()

	response := dto.CatalogResponse{
		SpaName:    h.spaName,
		Currency:   h.catalog.DefaultCurrency(),
		Categories: make([]dto.CategoryResponse, 0, len(listing)),
	}

	total := 0
	for _, group := range listing {
		category := dto.CategoryResponse{
			Category:    group.Category,
			DisplayName: format.DisplayName(group.Category),
			Services:    make([]dto.ServiceResponse, 0, len(group.Services)),
		}
		for _, svc := range group.Services {
			category.Services = append(category.Services, toServiceResponse(svc))
			total++
		}
		response.Categories = append(response.Categories, category)
	}

	h.metrics.SetGauge("services_stored", float64(total))
	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// CreateService adds a service to the catalog
func (h *CatalogHandler) CreateService(c echo.Context) error {
	start := time.Now()

	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	svc, err := h.catalog.AddService(
		req.Category,
		req.Name,
		decimal.NewFromFloat(req.Price),
		req.Duration,
		req.Description,
		req.Currency,
	)

	h.metrics.RecordProcessingTime("service_create", time.Since(start))
	if err != nil {
		h.metrics.IncrementCounter("service_create", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	h.metrics.IncrementCounter("service_create", map[string]string{"status": "success"})
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toServiceResponse(*svc),
		Message: "Service successfully added",
	})
}

// GetService returns one service located by slug-tolerant name
func (h *CatalogHandler) GetService(c echo.Context) error {
	svc, err := h.catalog.GetService(c.Param("name"))
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toServiceResponse(*svc)})
}

// UpdateService applies a partial update to a service within a category
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	var req dto.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	patch := models.ServicePatch{
		Duration:    req.Duration,
		Description: req.Description,
		Currency:    req.Currency,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		patch.Price = &price
	}

	svc, err := h.catalog.UpdateService(req.Category, c.Param("name"), patch)
	if err != nil {
		h.metrics.IncrementCounter("service_update", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	h.metrics.IncrementCounter("service_update", map[string]string{"status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toServiceResponse(*svc),
		Message: "Service successfully updated",
	})
}

// DeleteService removes a service from the catalog
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	category, err := h.catalog.RemoveService(c.Param("name"))
	if err != nil {
		h.metrics.IncrementCounter("service_delete", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	h.metrics.IncrementCounter("service_delete", map[string]string{"status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Service removed from " + category,
	})
}

// SetPrice patches the price and/or currency of one service
func (h *CatalogHandler) SetPrice(c echo.Context) error {
	var req dto.SetPriceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	var price *decimal.Decimal
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		price = &p
	}

	svc, err := h.catalog.SetServicePrice(c.Param("name"), price, req.Currency)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toServiceResponse(*svc),
		Message: "Price successfully updated",
	})
}

// ChangeCurrency rewrites every service currency plus the catalog default
func (h *CatalogHandler) ChangeCurrency(c echo.Context) error {
	var req dto.ChangeCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.catalog.ChangeCurrencyForAll(req.Currency); err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Currency changed to " + req.Currency + " for all services",
	})
}

// SaveCatalog persists the catalog to its JSON file
func (h *CatalogHandler) SaveCatalog(c echo.Context) error {
	path := h.persistencePath(c)
	if path == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := h.catalog.SaveToJSON(path); err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Services saved to " + path})
}

// LoadCatalog replaces the catalog with the JSON file contents
func (h *CatalogHandler) LoadCatalog(c echo.Context) error {
	path := h.persistencePath(c)
	if path == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := h.catalog.LoadFromJSON(path); err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Services loaded from " + path})
}

// persistencePath resolves the file path for a save/load request, falling
// back to the configured default. An unreadable body yields "".
func (h *CatalogHandler) persistencePath(c echo.Context) string {
	var req dto.PersistenceRequest
	if err := c.Bind(&req); err != nil {
		return ""
	}
	if req.Filename != "" {
		return req.Filename
	}
	return h.defaultPath
}

func toServiceResponse(svc models.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		Name:        svc.Name,
		DisplayName: format.DisplayName(svc.Name),
		Category:    svc.Category,
		Price:       svc.Price.InexactFloat64(),
		Currency:    svc.Currency,
		Duration:    svc.Duration,
		Description: svc.Description,
	}
}
