package create_booking

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	createBooking "github.com/Aryan-Wadhawan/masaje-app/internal/usecase/create_booking"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// CreateBookingRequest is the HTTP request model.
type CreateBookingRequest struct {
	LocationID    int64    `json:"locationId"`
	BookingDate   string   `json:"bookingDate"` // "2026-03-02"
	StartTime     string   `json:"startTime"`   // "10:00"
	ServiceCodes  []string `json:"serviceCodes,omitempty"`
	TherapistID   *int64   `json:"therapistId,omitempty"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Notes         *string  `json:"notes,omitempty"`
}

// BookingItemResponse is one service line of the created booking.
type BookingItemResponse struct {
	ServiceCode     string  `json:"serviceCode"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse is the HTTP response model.
type BookingResponse struct {
	Reference       string                `json:"reference"`
	Status          string                `json:"status"`
	LocationID      int64                 `json:"locationId"`
	TherapistID     *int64                `json:"therapistId,omitempty"`
	BookingDate     string                `json:"bookingDate"`
	StartTime       string                `json:"startTime"`
	DurationMinutes int                   `json:"durationMinutes"`
	TotalPrice      float64               `json:"totalPrice"`
	Items           []BookingItemResponse `json:"items"`
	CreatedAt       string                `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		LocationID:    r.LocationID,
		Date:          bookingDate,
		StartTime:     startTime,
		ServiceCodes:  r.ServiceCodes,
		TherapistID:   r.TherapistID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	items := make([]BookingItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, BookingItemResponse{
			ServiceCode:     item.ServiceCode,
			ServiceName:     item.ServiceName,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
		})
	}

	return &BookingResponse{
		Reference:       resp.Reference,
		Status:          string(resp.Status),
		LocationID:      resp.LocationID,
		TherapistID:     resp.TherapistID,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		Items:           items,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
