package models

import (
	"errors"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest asks to cancel a booking.
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest asks to move a booking along its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetCustomerBookingsRequest fetches a customer's booking history.
type GetCustomerBookingsRequest struct {
	Phone  string  `json:"phone"`
	Status *string `json:"status,omitempty"`
}

// GetLocationBookingsRequest fetches a branch's bookings with filtering by
// therapist, period and status.
type GetLocationBookingsRequest struct {
	LocationID      int64      `json:"locationId"`
	TherapistID     *int64     `json:"therapistId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the storage filter.
func (r *GetLocationBookingsRequest) ToDomainFilter() (domain.LocationBookingsFilter, error) {
	filter := domain.LocationBookingsFilter{
		LocationID:      r.LocationID,
		TherapistID:     r.TherapistID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingItemResponse is one service line of a booking.
type BookingItemResponse struct {
	ServiceCode     string  `json:"serviceCode"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse carries the booking data over the API.
type BookingResponse struct {
	Reference       string `json:"reference"`
	TherapistID     *int64 `json:"therapistId,omitempty"`
	LocationID      int64  `json:"locationId"`
	BookingDate     string `json:"bookingDate"` // "2026-03-02"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	CustomerName  string                `json:"customerName"`
	CustomerPhone string                `json:"customerPhone"`
	Items         []BookingItemResponse `json:"items"`
	TotalPrice    float64               `json:"totalPrice"`
	Notes         *string               `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse carries a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking into the API DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	items := make([]BookingItemResponse, len(b.Items))
	for i, item := range b.Items {
		items[i] = BookingItemResponse{
			ServiceCode:     item.ServiceCode,
			ServiceName:     item.ServiceName,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
		}
	}

	resp := &BookingResponse{
		Reference:          b.Reference,
		TherapistID:        b.TherapistID,
		LocationID:         b.LocationID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		Items:              items,
		TotalPrice:         b.TotalPrice(),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList converts domain bookings into the list DTO.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}

// ToDomainBookingStatus converts and validates a status string.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}
	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
