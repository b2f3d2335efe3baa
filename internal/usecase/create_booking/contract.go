package create_booking

import (
	"context"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// TherapistRepository supplies the therapist roster.
type TherapistRepository interface {
	GetAll(ctx context.Context) ([]domain.Therapist, error)
	GetByID(ctx context.Context, id int64) (*domain.Therapist, error)
}

// ScheduleRepository supplies the weekday schedule snapshot.
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduleEntry, error)
}

// ConfigRepository supplies the per-location slot configuration.
type ConfigRepository interface {
	GetByLocation(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error)
}

// BookingRepository persists bookings and supplies the live snapshot the
// capacity and conflict checks run against.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository resolves service codes to durations and prices.
type ServiceRepository interface {
	GetByCodes(ctx context.Context, codes []string) ([]domain.Service, error)
}

// TxManager runs the availability re-check and the insert as one atomic unit.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the current time for testing.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
