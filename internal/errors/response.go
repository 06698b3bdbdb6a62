package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the JSON shape every API error is rendered as
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error code, its message, optional field-level
// details, and the trace ID of the failed request
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts an error response at construction time
type ErrorOption func(*ErrorResponse)

// WithDetails attaches detail lines to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds an error response for the given code and trace ID.
// Details start empty so the JSON shape is stable whether or not options add any.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError renders field validation failures as one VALIDATION_001
// response with a "field: message" detail line per failed field, sorted so
// the output is deterministic.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides an internal error behind the generic SYSTEM_001
// response. The original error comes back unchanged for server-side logging;
// clients only ever see the generic message.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// ToJSON serializes the error response
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus maps an error code to its HTTP status. Request-shape problems
// are 400, missing resources 404, duplicates 409, requests that parse but
// break a business rule 422, and everything unrecognized falls through to 500.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationNotAnInteger,
		ValidationNegative, ValidationWrongLength, ValidationNotPositive,
		ValidationInvalidDate, AppointmentBadDate, RecommendationInvalidTopN:
		return http.StatusBadRequest

	case ServiceNotFound, ServiceCategoryMissing, AppointmentNotFound, StorageFileNotFound:
		return http.StatusNotFound

	case ServiceDuplicate, AppointmentDuplicate:
		return http.StatusConflict

	case ServiceNegativePrice, ServiceInvalidDuration,
		AppointmentUnknownService, AppointmentInPast,
		StorageMalformedJSON, StorageInvalidStructure:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status for this response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError reports whether the response maps to a 4xx status
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError reports whether the response maps to a 5xx status
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
