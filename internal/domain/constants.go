package domain

import "github.com/Aryan-Wadhawan/masaje-app/pkg/types"

// Default slot ladder and booking-window configuration.
const (
	DefaultOpenTime                = types.TimeOfDay("09:00")
	DefaultCloseTime               = types.TimeOfDay("18:00")
	DefaultSlotStepMinutes         = 60
	DefaultAdvanceBookingDays      = 0 // unlimited
	DefaultMinBookingNoticeMinutes = 60
)

// DefaultServiceDurationMinutes is used when a booking request names no
// services.
const DefaultServiceDurationMinutes = 60

// Business validation bounds.
const (
	MinServiceDurationMinutes   = 15
	MaxServiceDurationMinutes   = 480
	MinSlotStepMinutes          = 15
	MaxSlotStepMinutes          = 240
	MaxAdvanceBookingDays       = 365
	MaxBookingNoticeMinutes     = 10080 // one week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxServicesPerBooking       = 10
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses excluded from capacity counting and
// conflict checks.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy a therapist's time.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusCompleted,
}
