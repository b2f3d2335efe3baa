package domain

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// ScheduleEntry is a therapist's availability for one weekday, optionally
// scoped to a location (LocationID nil = applies at every location).
// For a given (therapist, weekday, location) there is at most one entry.
type ScheduleEntry struct {
	ID          int64
	TherapistID int64
	Weekday     time.Weekday
	Start       types.TimeOfDay
	End         types.TimeOfDay
	IsOff       bool // explicit day off, overrides Start/End
	LocationID  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesAt reports whether the entry covers the given location.
// locationID 0 means "no location filter" and matches any entry.
func (e *ScheduleEntry) AppliesAt(locationID int64) bool {
	if locationID == 0 || e.LocationID == nil {
		return true
	}
	return *e.LocationID == locationID
}

// IsLocationScoped reports whether the entry applies to a single location only.
func (e *ScheduleEntry) IsLocationScoped() bool {
	return e.LocationID != nil
}
