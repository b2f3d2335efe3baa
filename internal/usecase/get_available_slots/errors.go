package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrDateTooFarInFuture is returned when the date exceeds the advance-booking limit.
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrServiceNotFound is returned when a requested service code is unknown.
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInternal is returned for unexpected repository or engine failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
