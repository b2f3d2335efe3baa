package config

import "errors"

var (
	// ErrConfigNotFound is returned when a location has no stored slot config.
	ErrConfigNotFound = errors.New("config.repository: config not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("config.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("config.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("config.repository: failed to scan row")
)
