package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

func TestCheckConflict_Overlap(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusApproved), // [09:00, 10:00)
	}

	conflict, err := CheckConflict(1, mustTime("09:30"), mustTime("10:30"), existing, "", nil)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, "b1", conflict.BookingReference)
	assert.Equal(t, int64(1), conflict.TherapistID)
	assert.Equal(t, "09:00", conflict.Start.String())
	assert.Equal(t, "10:00", conflict.End.String())
}

func TestCheckConflict_DifferentTherapist(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusApproved),
	}

	conflict, err := CheckConflict(2, mustTime("09:30"), mustTime("10:30"), existing, "", nil)
	require.NoError(t, err)
	assert.Nil(t, conflict, "another therapist's booking is not a conflict")
}

func TestCheckConflict_TouchingIntervalsDoNotConflict(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusApproved), // [09:00, 10:00)
	}

	// [10:00, 11:00) starts exactly where the existing booking ends.
	conflict, err := CheckConflict(1, mustTime("10:00"), mustTime("11:00"), existing, "", nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// [08:00, 09:00) ends exactly where the existing booking starts.
	conflict, err = CheckConflict(1, mustTime("08:00"), mustTime("09:00"), existing, "", nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// One extra minute makes it a real overlap.
	existingLong := []*domain.Booking{
		booking("b2", 1, "09:00", 61, domain.StatusApproved), // [09:00, 10:01)
	}
	conflict, err = CheckConflict(1, mustTime("10:00"), mustTime("11:00"), existingLong, "", nil)
	require.NoError(t, err)
	assert.NotNil(t, conflict)
}

func TestCheckConflict_Symmetry(t *testing.T) {
	// Flagging [A,B) against existing [C,D) must match flagging [C,D)
	// against existing [A,B).
	cases := []struct {
		aStart string
		aDur   int
		bStart string
		bDur   int
	}{
		{"09:00", 60, "09:30", 60}, // overlap
		{"09:00", 60, "10:00", 60}, // touching
		{"09:00", 30, "11:00", 30}, // disjoint
		{"09:00", 120, "09:30", 30}, // containment
	}

	for _, tc := range cases {
		a := booking("a", 1, tc.aStart, tc.aDur, domain.StatusApproved)
		b := booking("b", 1, tc.bStart, tc.bDur, domain.StatusApproved)

		aEnd, err := a.EndTime()
		require.NoError(t, err)
		bEnd, err := b.EndTime()
		require.NoError(t, err)

		abConflict, err := CheckConflict(1, a.StartTime, aEnd, []*domain.Booking{b}, "", nil)
		require.NoError(t, err)
		baConflict, err := CheckConflict(1, b.StartTime, bEnd, []*domain.Booking{a}, "", nil)
		require.NoError(t, err)

		assert.Equal(t, abConflict != nil, baConflict != nil,
			"overlap test must be symmetric for [%s+%dm) vs [%s+%dm)", tc.aStart, tc.aDur, tc.bStart, tc.bDur)
	}
}

func TestCheckConflict_CancelledBookingIgnored(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusCancelled),
	}

	conflict, err := CheckConflict(1, mustTime("09:00"), mustTime("10:00"), existing, "", nil)
	require.NoError(t, err)
	assert.Nil(t, conflict, "cancelled bookings must not block the slot")
}

func TestCheckConflict_ExcludesOwnBookingOnUpdate(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusApproved),
	}

	// Re-validating b1 itself must not flag b1.
	conflict, err := CheckConflict(1, mustTime("09:00"), mustTime("10:00"), existing, "b1", nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheckConflict_UnassignedBookingsSkipped(t *testing.T) {
	unassigned := booking("b1", 0, "09:00", 60, domain.StatusApproved)
	unassigned.TherapistID = nil

	conflict, err := CheckConflict(1, mustTime("09:00"), mustTime("10:00"), []*domain.Booking{unassigned}, "", nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheckConflict_InvalidInterval(t *testing.T) {
	_, err := CheckConflict(1, mustTime("10:00"), mustTime("10:00"), nil, "", nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = CheckConflict(1, mustTime("10:00"), mustTime("09:00"), nil, "", nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCheckConflict_CustomInactiveSet(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", 1, "09:00", 60, domain.StatusCompleted),
	}

	// Default set: completed bookings still occupy the therapist.
	conflict, err := CheckConflict(1, mustTime("09:30"), mustTime("10:30"), existing, "", nil)
	require.NoError(t, err)
	assert.NotNil(t, conflict)

	// Caller-supplied set treating completed as inactive.
	inactive := []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted}
	conflict, err = CheckConflict(1, mustTime("09:30"), mustTime("10:30"), existing, "", inactive)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}
