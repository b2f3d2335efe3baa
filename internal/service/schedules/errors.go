package schedules

import "errors"

var (
	// ErrTherapistNotFound is returned when the therapist does not exist.
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrInvalidInput is returned for malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("service: internal error")
)
