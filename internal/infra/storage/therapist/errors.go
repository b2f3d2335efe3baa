package therapist

import "errors"

var (
	// ErrTherapistNotFound is returned when a therapist does not exist.
	ErrTherapistNotFound = errors.New("therapist.repository: therapist not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("therapist.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("therapist.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("therapist.repository: failed to scan row")
)
