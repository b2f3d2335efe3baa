package create_booking

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// Request carries everything needed to place a booking. TherapistID is
// optional; when nil any covering therapist satisfies the booking and the
// branch assigns one later.
type Request struct {
	LocationID    int64
	Date          time.Time
	StartTime     types.TimeOfDay
	ServiceCodes  []string
	TherapistID   *int64
	CustomerName  string
	CustomerPhone string
	Notes         *string
}

// Response describes the booking as persisted.
type Response struct {
	Reference       string
	Status          domain.BookingStatus
	LocationID      int64
	TherapistID     *int64
	Date            time.Time
	StartTime       types.TimeOfDay
	DurationMinutes int
	TotalPrice      float64
	Items           []domain.BookingItem
	CreatedAt       time.Time
}

func responseFromBooking(b *domain.Booking) *Response {
	return &Response{
		Reference:       b.Reference,
		Status:          b.Status,
		LocationID:      b.LocationID,
		TherapistID:     b.TherapistID,
		Date:            b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		TotalPrice:      b.TotalPrice(),
		Items:           b.Items,
		CreatedAt:       b.CreatedAt,
	}
}
