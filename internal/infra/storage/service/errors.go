package service

import "errors"

var (
	// ErrServiceNotFound is returned when a requested service code is unknown.
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
