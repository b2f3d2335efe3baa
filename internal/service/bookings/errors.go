package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking can no longer be cancelled.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("service: internal error")
)
