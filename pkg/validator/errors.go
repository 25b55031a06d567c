package validator

import "errors"

// Sentinel errors shared across the engine.
var (
	// ErrValidationFailed is returned when validation fails without a more
	// specific error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrOutOfRange is returned when a numeric value falls outside the
	// allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a value does not match the expected
	// format.
	ErrInvalidFormat = errors.New("invalid format")
)
