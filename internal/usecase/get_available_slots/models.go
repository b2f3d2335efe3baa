package get_available_slots

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// Request asks for the open slots of a location on a date.
// ServiceCodes determines the booking duration (sum of service durations);
// empty means one slot of the default duration.
type Request struct {
	LocationID   int64
	Date         time.Time
	ServiceCodes []string
}

// Response carries the computed slots.
type Response struct {
	LocationID      int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.Slot
}
