package bookings

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetByCustomerPhone(ctx context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error
	Cancel(ctx context.Context, reference string, reason string) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
