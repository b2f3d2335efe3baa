package domain

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a spa service booking.
//
// TherapistID is nil until a therapist is assigned; unassigned bookings count
// toward branch capacity but never toward a therapist conflict.
type Booking struct {
	ID              int64
	Reference       string // public identifier exposed over the API
	TherapistID     *int64
	LocationID      int64
	BookingDate     time.Time
	StartTime       types.TimeOfDay
	DurationMinutes int
	Status          BookingStatus

	CustomerName  string
	CustomerPhone string
	Items         []BookingItem
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingItem is one service line inside a booking. DurationMinutes is an
// explicit attribute of the service definition, never inferred from the code.
type BookingItem struct {
	ID              int64
	ServiceCode     string
	ServiceName     string
	Price           float64
	DurationMinutes int
}

// EndTime returns the exclusive end of the booking interval.
func (b *Booking) EndTime() (types.TimeOfDay, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// IsActive reports whether the booking counts toward capacity and conflicts.
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// CanBeCancelled reports whether the booking may still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// TotalPrice sums the prices of all booked services.
func (b *Booking) TotalPrice() float64 {
	total := 0.0
	for _, item := range b.Items {
		total += item.Price
	}
	return total
}

// LocationBookingsFilter selects bookings of one location for listing and
// for the availability snapshot.
type LocationBookingsFilter struct {
	LocationID      int64
	TherapistID     *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}

// ValidStatusTransition reports whether a manual status change is allowed.
// Cancellation goes through its own operation with a reason.
func ValidStatusTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved
	case StatusApproved:
		return to == StatusCompleted
	default:
		return false
	}
}
