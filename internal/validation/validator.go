package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"spa-records/internal/format"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("phone_id", validatePhoneIDField)
	_ = v.RegisterValidation("service_name", validateServiceName)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("flexible_datetime", validateFlexibleDateTime)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var (
	serviceNameRegex  = regexp.MustCompile(`^[a-z0-9_]+$`)
	currencyCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// validatePhoneIDField validates that an integer field holds an 8-digit phone ID
func validatePhoneIDField(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ValidatePhoneID(int(fl.Field().Int())) == nil
	default:
		return false
	}
}

// validateServiceName validates that a service name normalizes to a non-empty slug
// of letters, digits and underscores
func validateServiceName(fl validator.FieldLevel) bool {
	slug := format.Slug(fl.Field().String())
	return slug != "" && serviceNameRegex.MatchString(slug)
}

// validateCurrencyCode validates a three-letter ISO-style currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}

// validateFlexibleDateTime validates that a date-time string parses in one of
// the accepted layouts
func validateFlexibleDateTime(fl validator.FieldLevel) bool {
	_, ok := format.ParseFlexibleDateTime(fl.Field().String())
	return ok
}
