package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")

	ErrInvalidDirection = errors.New("direction must be 'up' or 'down'")
	ErrInvalidStatus    = errors.New("unknown lead status")

	// ErrRequiredField is returned when a required field is missing or blank
	// in a submission.
	ErrRequiredField = errors.New("required field missing")
	// ErrInvalidFieldValue is returned when a submitted value fails its
	// field-type check.
	ErrInvalidFieldValue = errors.New("invalid field value")
)
