package service

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/dbmetrics"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const serviceColumns = "code, name, description, price, duration_minutes, active"

// Repository reads the bookable service catalog.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a service catalog repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCodes resolves active services by code, preserving the request order.
// Returns ErrServiceNotFound naming the first unknown or inactive code.
func (r *Repository) GetByCodes(ctx context.Context, codes []string) ([]domain.Service, error) {
	if len(codes) == 0 {
		return []domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns).
		From("services").
		Where(squirrel.Eq{"code": codes, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byCode := make(map[string]domain.Service, len(codes))
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.Code, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: GetByCodes - scan row: %v", ErrScanRow, err)
		}
		byCode[s.Code] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - rows error: %v", ErrScanRow, err)
	}

	services := make([]domain.Service, 0, len(codes))
	for _, code := range codes {
		s, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, code)
		}
		services = append(services, s)
	}
	return services, nil
}

// GetAllActive lists the active catalog for the booking UI.
func (r *Repository) GetAllActive(ctx context.Context) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.Code, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: GetAllActive - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}
