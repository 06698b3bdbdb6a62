package dto

// CreateServiceRequest is the payload for adding a service to the catalog
type CreateServiceRequest struct {
	Category    string  `json:"category" validate:"required,service_name"`
	Name        string  `json:"name" validate:"required,service_name"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Currency    string  `json:"currency" validate:"omitempty,currency_code"`
}

// UpdateServiceRequest is the payload for a partial service update.
// Nil fields are left untouched.
type UpdateServiceRequest struct {
	Category    string   `json:"category" validate:"required,service_name"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration    *int     `json:"duration" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Currency    *string  `json:"currency" validate:"omitempty,currency_code"`
}

// SetPriceRequest patches the price and/or currency of one service
type SetPriceRequest struct {
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Currency *string  `json:"currency" validate:"omitempty,currency_code"`
}

// ChangeCurrencyRequest rewrites the currency of every service plus the
// catalog default
type ChangeCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,currency_code"`
}

// PersistenceRequest optionally overrides the configured file path for a
// save or load operation
type PersistenceRequest struct {
	Filename string `json:"filename"`
}

// ServiceResponse is the API shape of one catalog service
type ServiceResponse struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}

// CategoryResponse groups the services of one category
type CategoryResponse struct {
	Category    string            `json:"category"`
	DisplayName string            `json:"display_name"`
	Services    []ServiceResponse `json:"services"`
}

// CatalogResponse is the full catalog listing
type CatalogResponse struct {
	SpaName    string             `json:"spa_name"`
	Currency   string             `json:"default_currency"`
	Categories []CategoryResponse `json:"categories"`
}
