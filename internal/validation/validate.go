package validation

import (
	"errors"
	"fmt"
	"strconv"
)

// PhoneIDDigits is the required number of decimal digits in a phone ID.
const PhoneIDDigits = 8

var (
	// ErrNegativeNumber is returned when a phone ID is below zero.
	ErrNegativeNumber = errors.New("negative number not allowed")
	// ErrWrongLength is returned when a phone ID does not have exactly 8 digits.
	// Identifiers written with leading zeros collapse to fewer digits once held
	// as an integer and fail this check; callers that care about leading zeros
	// must keep the exact 8-digit token themselves.
	ErrWrongLength = errors.New("phone ID must contain exactly 8 digits")
)

// ValidatePhoneID checks that a phone ID is a non-negative integer whose
// canonical decimal form has exactly 8 digits. The sign check runs before the
// length check, so -12345678 reports ErrNegativeNumber, not ErrWrongLength.
func ValidatePhoneID(phoneID int) error {
	if phoneID < 0 {
		return ErrNegativeNumber
	}
	if len(strconv.Itoa(phoneID)) != PhoneIDDigits {
		return ErrWrongLength
	}
	return nil
}

// NotPositiveError reports a non-positive value for a named parameter.
type NotPositiveError struct {
	Label string
}

func (e *NotPositiveError) Error() string {
	return fmt.Sprintf("%s must be a positive number", e.Label)
}

// ValidatePositiveInt checks that value is strictly positive. The label names
// the parameter in the error message.
func ValidatePositiveInt(value int, label string) error {
	if value <= 0 {
		return &NotPositiveError{Label: label}
	}
	return nil
}

// IsNotPositive reports whether err is a NotPositiveError.
func IsNotPositive(err error) bool {
	var npe *NotPositiveError
	return errors.As(err, &npe)
}
