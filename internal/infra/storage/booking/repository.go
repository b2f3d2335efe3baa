package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/dbmetrics"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/psqlbuilder"
)

const bookingColumns = "id, reference, therapist_id, location_id, booking_date, start_time, " +
	"duration_minutes, status, customer_name, customer_phone, notes, " +
	"cancellation_reason, cancelled_at, created_at, updated_at"

// Repository persists bookings and their service items.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking together with its items. If the context carries an
// open transaction (via dbmetrics), the insert joins it; the availability
// re-check and this insert must share one serializable transaction.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"therapist_id",
			"location_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"customer_name",
			"customer_phone",
			"notes",
		).
		Values(
			b.Reference,
			b.TherapistID,
			b.LocationID,
			b.BookingDate,
			b.StartTime,
			b.DurationMinutes,
			b.Status,
			b.CustomerName,
			b.CustomerPhone,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	for i := range b.Items {
		item := &b.Items[i]
		itemQuery, itemArgs, err := psqlbuilder.Insert("booking_items").
			Columns("booking_id", "service_code", "service_name", "price", "duration_minutes").
			Values(b.ID, item.ServiceCode, item.ServiceName, item.Price, item.DurationMinutes).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build item insert: %v", ErrBuildQuery, err)
		}
		if err := executor.QueryRowContext(ctx, itemQuery, itemArgs...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute item insert: %v", ErrExecQuery, err)
		}
	}

	return b, nil
}

// GetByReference fetches a booking, including its items, by public reference.
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("GetByReference: %w", err)
	}

	if err := r.loadItems(ctx, executor, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByCustomerPhone lists a customer's bookings newest first, items included.
func (r *Repository) GetByCustomerPhone(ctx context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if err := r.loadItems(ctx, executor, b); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// GetByLocationWithFilter lists a location's bookings. Items are not loaded;
// callers use this for availability snapshots and staff listings.
//
// When the context carries a transaction and the filter targets a single
// date, the rows are locked FOR UPDATE so a concurrent booking for the same
// day blocks until commit.
func (r *Repository) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"location_id": filter.LocationID})

	if filter.TherapistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"therapist_id": *filter.TherapistID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus sets the booking status by reference.
func (r *Repository) UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Cancel marks the booking cancelled with a reason and timestamp.
func (r *Repository) Cancel(ctx context.Context, reference string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.TherapistID,
		&b.LocationID,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationMinutes,
		&b.Status,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

func (r *Repository) loadItems(ctx context.Context, executor DBExecutor, b *domain.Booking) error {
	query, args, err := psqlbuilder.Select("id", "service_code", "service_name", "price", "duration_minutes").
		From("booking_items").
		Where(squirrel.Eq{"booking_id": b.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.BookingItem, 0)
	for rows.Next() {
		var item domain.BookingItem
		if err := rows.Scan(&item.ID, &item.ServiceCode, &item.ServiceName, &item.Price, &item.DurationMinutes); err != nil {
			return fmt.Errorf("%w: loadItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}

	b.Items = items
	return nil
}
