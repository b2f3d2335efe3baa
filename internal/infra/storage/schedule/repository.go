package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/dbmetrics"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const entryColumns = "id, therapist_id, weekday, start_time, end_time, is_off, location_id, created_at, updated_at"

// Repository reads and writes therapist schedule entries.
//
// Filtering rules (active therapist, off-day, location scoping) deliberately
// live in the in-process registry, not in SQL: the repository only narrows
// rows so every caller shares one filtering authority.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday returns every schedule entry for a weekday, unfiltered.
func (r *Repository) GetByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns).
		From("therapist_schedules").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		OrderBy("therapist_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetByTherapist returns a therapist's full weekly schedule.
func (r *Repository) GetByTherapist(ctx context.Context, therapistID int64) ([]domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns).
		From("therapist_schedules").
		Where(squirrel.Eq{"therapist_id": therapistID}).
		OrderBy("weekday ASC, location_id ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTherapist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTherapist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// Upsert inserts or replaces the entry for (therapist, weekday, location).
// The unique index on that tuple keeps the at-most-one-entry invariant.
func (r *Repository) Upsert(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("therapist_schedules").
		Columns("therapist_id", "weekday", "start_time", "end_time", "is_off", "location_id").
		Values(entry.TherapistID, int(entry.Weekday), entry.Start, entry.End, entry.IsOff, entry.LocationID).
		Suffix("ON CONFLICT (therapist_id, weekday, COALESCE(location_id, 0)) DO UPDATE SET " +
			"start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, " +
			"is_off = EXCLUDED.is_off, updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time
	return entry, nil
}

func (r *Repository) scanEntries(rows *sql.Rows) ([]domain.ScheduleEntry, error) {
	entries := make([]domain.ScheduleEntry, 0)
	for rows.Next() {
		var e domain.ScheduleEntry
		var weekday int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.TherapistID,
			&weekday,
			&e.Start,
			&e.End,
			&e.IsOff,
			&e.LocationID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		e.Weekday = time.Weekday(weekday)
		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}
