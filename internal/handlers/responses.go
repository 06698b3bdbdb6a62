package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"spa-records/internal/errors"
	"spa-records/internal/models"
	"spa-records/internal/repositories"
	"spa-records/internal/services"
	"spa-records/internal/validation"
)

// All handlers report failures through SendError / SendDomainError /
// SendSystemError so every error leaves the API in the standardized
// ErrorResponse shape with a trace ID. echo.NewHTTPError is never used
// directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDomainError maps a sentinel error from the service or repository layer
// to its standardized error code and sends the response
func SendDomainError(c echo.Context, err error) error {
	return SendError(c, DomainErrorCode(err), errors.WithDetails(err.Error()))
}

// DomainErrorCode translates the closed set of sentinel errors into API
// error codes. Anything unrecognized is a system error.
func DomainErrorCode(err error) errors.ErrorCode {
	switch {
	case stderrors.Is(err, validation.ErrNegativeNumber):
		return errors.ValidationNegative
	case stderrors.Is(err, validation.ErrWrongLength):
		return errors.ValidationWrongLength
	case validation.IsNotPositive(err):
		return errors.ValidationNotPositive
	case stderrors.Is(err, services.ErrInvalidTopN):
		return errors.RecommendationInvalidTopN
	case stderrors.Is(err, models.ErrNegativePrice):
		return errors.ServiceNegativePrice
	case stderrors.Is(err, models.ErrInvalidDuration):
		return errors.ServiceInvalidDuration
	case stderrors.Is(err, repositories.ErrCategoryNotFound):
		return errors.ServiceCategoryMissing
	case stderrors.Is(err, repositories.ErrServiceNotFound):
		return errors.ServiceNotFound
	case stderrors.Is(err, repositories.ErrDuplicateService):
		return errors.ServiceDuplicate
	case stderrors.Is(err, repositories.ErrAppointmentNotFound):
		return errors.AppointmentNotFound
	case stderrors.Is(err, repositories.ErrDuplicateAppointment):
		return errors.AppointmentDuplicate
	case stderrors.Is(err, services.ErrUnknownService):
		return errors.AppointmentUnknownService
	case stderrors.Is(err, services.ErrInvalidDate):
		return errors.AppointmentBadDate
	case stderrors.Is(err, services.ErrPastAppointment):
		return errors.AppointmentInPast
	case stderrors.Is(err, repositories.ErrFileNotFound):
		return errors.StorageFileNotFound
	case stderrors.Is(err, repositories.ErrMalformedJSON):
		return errors.StorageMalformedJSON
	case stderrors.Is(err, repositories.ErrInvalidStructure):
		return errors.StorageInvalidStructure
	default:
		return errors.SystemInternalError
	}
}
