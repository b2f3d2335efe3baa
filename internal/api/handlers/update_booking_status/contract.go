package update_booking_status

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, reference string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
