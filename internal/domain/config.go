package domain

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// LocationSlotsConfig is the per-location booking configuration: the slot
// ladder (open, close, step) plus booking-window policy. Locations without a
// row fall back to the defaults in constants.go.
type LocationSlotsConfig struct {
	ID                      int64
	LocationID              int64
	OpenTime                types.TimeOfDay
	CloseTime               types.TimeOfDay
	SlotStepMinutes         int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultLocationSlotsConfig returns the fallback configuration used when a
// location has no stored row.
func DefaultLocationSlotsConfig(locationID int64) *LocationSlotsConfig {
	return &LocationSlotsConfig{
		LocationID:              locationID,
		OpenTime:                DefaultOpenTime,
		CloseTime:               DefaultCloseTime,
		SlotStepMinutes:         DefaultSlotStepMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

// HasAdvanceBookingLimit reports whether far-future bookings are restricted.
func (c *LocationSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}
