package config

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

const configColumns = "id, location_id, open_time, close_time, slot_step_minutes, " +
	"advance_booking_days, min_booking_notice_minutes, created_at, updated_at"

// Repository persists per-location slot configuration.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot-config repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation fetches the slot configuration for a location.
// Callers fall back to domain.DefaultLocationSlotsConfig on ErrConfigNotFound.
func (r *Repository) GetByLocation(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns).
		From("location_slots_config").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.LocationSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.LocationID,
		&c.OpenTime,
		&c.CloseTime,
		&c.SlotStepMinutes,
		&c.AdvanceBookingDays,
		&c.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - scan config: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

// Upsert inserts or replaces a location's slot configuration.
func (r *Repository) Upsert(ctx context.Context, c *domain.LocationSlotsConfig) (*domain.LocationSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("location_slots_config").
		Columns(
			"location_id",
			"open_time",
			"close_time",
			"slot_step_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			c.LocationID,
			c.OpenTime,
			c.CloseTime,
			c.SlotStepMinutes,
			c.AdvanceBookingDays,
			c.MinBookingNoticeMinutes,
		).
		Suffix("ON CONFLICT (location_id) DO UPDATE SET " +
			"open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, " +
			"slot_step_minutes = EXCLUDED.slot_step_minutes, " +
			"advance_booking_days = EXCLUDED.advance_booking_days, " +
			"min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes, " +
			"updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return c, nil
}
