package availability

import (
	"fmt"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// Conflict describes an overlap between a candidate interval and an existing
// active booking for the same therapist. Returned as a value, never raised:
// the caller decides whether to pick another time or therapist.
type Conflict struct {
	BookingReference string
	TherapistID      int64
	Start            types.TimeOfDay
	End              types.TimeOfDay
}

// CheckConflict reports whether booking [start, end) for therapistID would
// overlap one of that therapist's existing active bookings.
//
// Intervals are half-open: a booking ending exactly when another starts does
// not conflict. The overlap test is the standard strict one,
// existing.Start < end && existing.End > start, and is symmetric.
//
// excludeRef names the booking being validated itself (update path) and is
// skipped by reference. bookings must already be scoped to the relevant date.
// inactive defaults to domain.InactiveStatuses when nil.
//
// Returns nil when there is no conflict. The check has no side effects; it
// must run before commit, inside the same atomic unit as the insert.
func CheckConflict(
	therapistID int64,
	start, end types.TimeOfDay,
	bookings []*domain.Booking,
	excludeRef string,
	inactive []domain.BookingStatus,
) (*Conflict, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}
	if inactive == nil {
		inactive = domain.InactiveStatuses
	}

	for _, b := range bookings {
		if b.TherapistID == nil || *b.TherapistID != therapistID {
			continue
		}
		if excludeRef != "" && b.Reference == excludeRef {
			continue
		}
		if !isActive(b, inactive) {
			continue
		}

		existingEnd, err := b.EndTime()
		if err != nil {
			// Malformed stored interval; cannot overlap anything representable.
			continue
		}

		if b.StartTime.IsBefore(end) && existingEnd.IsAfter(start) {
			return &Conflict{
				BookingReference: b.Reference,
				TherapistID:      therapistID,
				Start:            b.StartTime,
				End:              existingEnd,
			}, nil
		}
	}
	return nil, nil
}
