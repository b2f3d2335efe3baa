package schedule

import "errors"

var (
	// ErrEntryNotFound is returned when a schedule entry does not exist.
	ErrEntryNotFound = errors.New("schedule.repository: entry not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
