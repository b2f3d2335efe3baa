package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/internal/schedule"
)

func hourlyGrid() SlotGrid {
	return SlotGrid{Open: "09:00", Close: "18:00", StepMinutes: 60}
}

func shift(id int64, start, end string) schedule.ProviderShift {
	return schedule.ProviderShift{TherapistID: id, Start: mustTime(start), End: mustTime(end)}
}

func TestSlotGrid_Times(t *testing.T) {
	times, err := hourlyGrid().Times()
	require.NoError(t, err)
	require.Len(t, times, 9) // 09:00 .. 17:00
	assert.Equal(t, "09:00", times[0].String())
	assert.Equal(t, "17:00", times[8].String())

	_, err = SlotGrid{Open: "18:00", Close: "09:00", StepMinutes: 60}.Times()
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = SlotGrid{Open: "09:00", Close: "18:00", StepMinutes: 0}.Times()
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestSlots_SingleTherapistNoBookings(t *testing.T) {
	// One therapist working Monday 09:00-18:00, nothing booked.
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}

	slots, err := Slots(hourlyGrid(), shifts, 60, nil, nil)
	require.NoError(t, err)

	// Every hourly mark from 09:00 to 17:00 fits: 17:00+60m = 18:00 and the
	// shift end is inclusive.
	require.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, 1, slots[0].AvailableSpots)
	assert.Equal(t, "17:00", slots[8].StartTime.String())
}

func TestSlots_LastSlotExcludedWhenShiftTooShort(t *testing.T) {
	// 17:30 + 60m = 18:30 > 18:00, so a half-hour grid must stop at 17:00.
	grid := SlotGrid{Open: "09:00", Close: "18:00", StepMinutes: 30}
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}

	slots, err := Slots(grid, shifts, 60, nil, nil)
	require.NoError(t, err)

	last := slots[len(slots)-1]
	assert.Equal(t, "17:00", last.StartTime.String())
	for _, s := range slots {
		end, err := s.StartTime.AddMinutes(60)
		require.NoError(t, err)
		assert.False(t, end.IsAfter(mustTime("18:00")), "slot %s spills past closing", s.StartTime)
	}
}

func TestSlots_BookingReducesCapacity(t *testing.T) {
	// Two therapists on shift; one active booking at 09:00 leaves capacity 1.
	shifts := []schedule.ProviderShift{
		shift(1, "09:00", "18:00"),
		shift(2, "09:00", "18:00"),
	}
	bookings := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusApproved),
	}

	slots, err := Slots(hourlyGrid(), shifts, 60, bookings, nil)
	require.NoError(t, err)

	nine := findSlot(t, slots, "09:00")
	assert.Equal(t, 1, nine.AvailableSpots)
	assert.Equal(t, 2, nine.TotalSpots)

	ten := findSlot(t, slots, "10:00")
	assert.Equal(t, 2, ten.AvailableSpots)
}

func TestSlots_FullSlotIsNotEmitted(t *testing.T) {
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}
	bookings := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusPending),
	}

	slots, err := Slots(hourlyGrid(), shifts, 60, bookings, nil)
	require.NoError(t, err)

	for _, s := range slots {
		assert.NotEqual(t, "09:00", s.StartTime.String(), "fully booked slot must be filtered")
		assert.Greater(t, s.AvailableSpots, 0, "no slot with zero remaining capacity may be emitted")
	}
}

func TestSlots_CancelledBookingRestoresCapacity(t *testing.T) {
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}
	bookings := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusCancelled),
	}

	slots, err := Slots(hourlyGrid(), shifts, 60, bookings, nil)
	require.NoError(t, err)

	nine := findSlot(t, slots, "09:00")
	assert.Equal(t, 1, nine.AvailableSpots, "cancelled booking must not occupy capacity")
}

func TestSlots_PartialShiftCoverageDoesNotCount(t *testing.T) {
	// Shift 09:00-12:00: covers 09:00-11:00 starts for a 60m booking, and the
	// 11:00 start only because the shift end is inclusive.
	shifts := []schedule.ProviderShift{shift(1, "09:00", "12:00")}

	slots, err := Slots(hourlyGrid(), shifts, 60, nil, nil)
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "11:00", slots[2].StartTime.String())
}

func TestSlots_LongDurationNeedsFullCoverage(t *testing.T) {
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}

	slots, err := Slots(hourlyGrid(), shifts, 90, nil, nil)
	require.NoError(t, err)

	// 17:00 + 90m = 18:30 > shift end, so the ladder stops at 16:00.
	last := slots[len(slots)-1]
	assert.Equal(t, "16:00", last.StartTime.String())
}

func TestSlots_AscendingOrderAndIdempotent(t *testing.T) {
	shifts := []schedule.ProviderShift{
		shift(1, "09:00", "18:00"),
		shift(2, "12:00", "18:00"),
	}
	bookings := []*domain.Booking{
		booking("b1", 1, "10:00", 60, domain.StatusApproved),
		booking("b2", 2, "13:00", 60, domain.StatusPending),
	}

	first, err := Slots(hourlyGrid(), shifts, 60, bookings, nil)
	require.NoError(t, err)
	second, err := Slots(hourlyGrid(), shifts, 60, bookings, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical snapshots must yield identical slots")

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].StartTime.IsBefore(first[i].StartTime), "slots must ascend")
	}
}

func TestSlots_NoShiftsMeansNoSlots(t *testing.T) {
	slots, err := Slots(hourlyGrid(), nil, 60, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, slots, "no coverage is an empty result, not an error")
}

func TestSlots_InvalidDuration(t *testing.T) {
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}

	_, err := Slots(hourlyGrid(), shifts, 0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Slots(hourlyGrid(), shifts, -30, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSlots_UnassignedBookingStillOccupiesCapacity(t *testing.T) {
	shifts := []schedule.ProviderShift{shift(1, "09:00", "18:00")}
	b := booking("b1", 0, "09:00", 60, domain.StatusPending)
	b.TherapistID = nil

	slots, err := Slots(hourlyGrid(), shifts, 60, []*domain.Booking{b}, nil)
	require.NoError(t, err)

	for _, s := range slots {
		assert.NotEqual(t, "09:00", s.StartTime.String())
	}
}

func findSlot(t *testing.T, slots []domain.Slot, start string) domain.Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime.String() == start {
			return s
		}
	}
	t.Fatalf("slot %s not found", start)
	return domain.Slot{}
}
