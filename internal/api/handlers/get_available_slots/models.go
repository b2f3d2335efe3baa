package get_available_slots

import (
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	getAvailableSlots "github.com/Aryan-Wadhawan/masaje-app/internal/usecase/get_available_slots"
)

// SlotResponse is one open slot.
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
}

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	LocationID      int64          `json:"locationId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		LocationID:      resp.LocationID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			AvailableSpots:  s.AvailableSpots,
			TotalSpots:      s.TotalSpots,
		})
	}
	return out
}
