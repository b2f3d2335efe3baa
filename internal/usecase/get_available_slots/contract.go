package get_available_slots

import (
	"context"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// TherapistRepository supplies the therapist roster snapshot.
type TherapistRepository interface {
	GetAll(ctx context.Context) ([]domain.Therapist, error)
}

// ScheduleRepository supplies the weekday schedule snapshot.
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduleEntry, error)
}

// ConfigRepository supplies the per-location slot configuration.
type ConfigRepository interface {
	GetByLocation(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error)
}

// BookingRepository supplies the live-bookings snapshot.
type BookingRepository interface {
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository resolves service codes to durations and prices.
type ServiceRepository interface {
	GetByCodes(ctx context.Context, codes []string) ([]domain.Service, error)
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
