// Package availability computes open booking slots and detects therapist
// double-bookings.
//
// Every function here is a pure function of its snapshot arguments: no I/O,
// no mutation, no caching. Results are recomputed on every call because
// concurrent bookings invalidate them instantly; the commit-time race is
// closed by the caller re-running these checks inside a serializable
// transaction (see usecase/create_booking).
package availability

import (
	"fmt"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/internal/schedule"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// SlotGrid is the fixed ladder of candidate start times: Open, Open+Step, ...
// strictly before Close.
type SlotGrid struct {
	Open        types.TimeOfDay
	Close       types.TimeOfDay
	StepMinutes int
}

// Times enumerates the ladder in ascending order.
func (g SlotGrid) Times() ([]types.TimeOfDay, error) {
	if err := g.Open.Validate(); err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrInvalidGrid, err)
	}
	if err := g.Close.Validate(); err != nil {
		return nil, fmt.Errorf("%w: close: %v", ErrInvalidGrid, err)
	}
	if g.StepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive", ErrInvalidGrid)
	}
	if !g.Open.IsBefore(g.Close) {
		return nil, fmt.Errorf("%w: open %s not before close %s", ErrInvalidGrid, g.Open, g.Close)
	}

	var times []types.TimeOfDay
	for m := g.Open.Minutes(); m < g.Close.Minutes(); m += g.StepMinutes {
		t, err := types.FromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
		}
		times = append(times, t)
	}
	return times, nil
}

// Slots enumerates the open slots for a booking of durationMinutes.
//
// For each grid time t with tEnd = t + duration:
//   - capacity = shifts fully containing [t, tEnd], shift end inclusive;
//   - load = active bookings starting exactly at t;
//   - the slot is emitted iff capacity - load > 0, carrying the remaining
//     capacity, in ascending time order.
//
// Grid times whose tEnd would cross midnight or exceed every shift simply
// yield zero capacity and are filtered out, not treated as errors.
//
// bookings must already be scoped to the requested location and date.
// inactive is the set of statuses that do not occupy capacity; nil means
// domain.InactiveStatuses.
func Slots(
	grid SlotGrid,
	shifts []schedule.ProviderShift,
	durationMinutes int,
	bookings []*domain.Booking,
	inactive []domain.BookingStatus,
) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}

	gridTimes, err := grid.Times()
	if err != nil {
		return nil, err
	}
	if inactive == nil {
		inactive = domain.InactiveStatuses
	}

	slots := make([]domain.Slot, 0, len(gridTimes))
	for _, start := range gridTimes {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			// Interval crosses midnight: no shift can cover it.
			continue
		}

		capacity := 0
		for _, shift := range shifts {
			if shift.Covers(start, end) {
				capacity++
			}
		}
		if capacity == 0 {
			continue
		}

		load := 0
		for _, b := range bookings {
			if isActive(b, inactive) && b.StartTime == start {
				load++
			}
		}

		remaining := capacity - load
		if remaining <= 0 {
			continue
		}

		slots = append(slots, domain.Slot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
			AvailableSpots:  remaining,
			TotalSpots:      capacity,
		})
	}
	return slots, nil
}

func isActive(b *domain.Booking, inactive []domain.BookingStatus) bool {
	for _, s := range inactive {
		if b.Status == s {
			return false
		}
	}
	return true
}
