package therapist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/dbmetrics"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const therapistColumns = "id, employee_code, display_name, active, home_location_id"

// Repository reads therapist reference data. Therapists are managed by HR
// administration; the booking service never mutates them.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a therapist repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll returns every therapist, active or not.
func (r *Repository) GetAll(ctx context.Context) ([]domain.Therapist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(therapistColumns).
		From("therapists").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	therapists := make([]domain.Therapist, 0)
	for rows.Next() {
		var t domain.Therapist
		if err := rows.Scan(&t.ID, &t.EmployeeCode, &t.DisplayName, &t.Active, &t.HomeLocationID); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		therapists = append(therapists, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}
	return therapists, nil
}

// GetByID fetches one therapist.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Therapist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(therapistColumns).
		From("therapists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Therapist
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.EmployeeCode, &t.DisplayName, &t.Active, &t.HomeLocationID)
	if err == sql.ErrNoRows {
		return nil, ErrTherapistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan therapist: %v", ErrScanRow, err)
	}
	return &t, nil
}
