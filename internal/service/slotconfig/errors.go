package slotconfig

import "errors"

var (
	// ErrInvalidInput is returned for out-of-range configuration values.
	ErrInvalidInput = errors.New("invalid configuration data")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("service: internal error")
)
