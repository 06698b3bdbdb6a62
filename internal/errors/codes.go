package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationNotAnInteger  ErrorCode = "VALIDATION_003"
	ValidationNegative      ErrorCode = "VALIDATION_004"
	ValidationWrongLength   ErrorCode = "VALIDATION_005"
	ValidationNotPositive   ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Service catalog error codes (SERVICE_*)
const (
	ServiceNotFound        ErrorCode = "SERVICE_001"
	ServiceDuplicate       ErrorCode = "SERVICE_002"
	ServiceCategoryMissing ErrorCode = "SERVICE_003"
	ServiceNegativePrice   ErrorCode = "SERVICE_004"
	ServiceInvalidDuration ErrorCode = "SERVICE_005"
)

// Appointment error codes (APPOINTMENT_*)
const (
	AppointmentNotFound       ErrorCode = "APPOINTMENT_001"
	AppointmentDuplicate      ErrorCode = "APPOINTMENT_002"
	AppointmentUnknownService ErrorCode = "APPOINTMENT_003"
	AppointmentInPast         ErrorCode = "APPOINTMENT_004"
	AppointmentBadDate        ErrorCode = "APPOINTMENT_005"
)

// Storage error codes (STORAGE_*)
const (
	StorageFileNotFound     ErrorCode = "STORAGE_001"
	StorageMalformedJSON    ErrorCode = "STORAGE_002"
	StorageInvalidStructure ErrorCode = "STORAGE_003"
)

// Recommendation error codes (RECOMMENDATION_*)
const (
	RecommendationInvalidTopN ErrorCode = "RECOMMENDATION_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationNotAnInteger:  "Provided value must be an integer",
	ValidationNegative:      "Negative number not allowed",
	ValidationWrongLength:   "Phone ID must contain exactly 8 digits",
	ValidationNotPositive:   "Value must be a positive number",
	ValidationInvalidDate:   "Invalid date format. Use YYYY-MM-DD HH:MM, DD-MM-YYYY HH:MM or DD/MM/YYYY HH:MM",

	// Service catalog errors
	ServiceNotFound:        "Service not found",
	ServiceDuplicate:       "Service already exists in this category",
	ServiceCategoryMissing: "Category not found",
	ServiceNegativePrice:   "Price must not be negative",
	ServiceInvalidDuration: "Duration must be a positive number of minutes",

	// Appointment errors
	AppointmentNotFound:       "Appointment not found",
	AppointmentDuplicate:      "An appointment already exists for this phone ID",
	AppointmentUnknownService: "Booked service does not exist in the catalog",
	AppointmentInPast:         "Cannot create appointment in the past",
	AppointmentBadDate:        "Invalid date format. Use YYYY-MM-DD HH:MM, DD-MM-YYYY HH:MM or DD/MM/YYYY HH:MM",

	// Storage errors
	StorageFileNotFound:     "Data file not found",
	StorageMalformedJSON:    "Error decoding JSON file",
	StorageInvalidStructure: "Invalid JSON structure",

	// Recommendation errors
	RecommendationInvalidTopN: "top_n must be a positive integer",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
