package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/ptr"
)

func therapist(id int64, active bool) domain.Therapist {
	return domain.Therapist{ID: id, EmployeeCode: "EMP", DisplayName: "Therapist", Active: active}
}

func entry(therapistID int64, weekday time.Weekday, start, end string, off bool, locationID *int64) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		TherapistID: therapistID,
		Weekday:     weekday,
		Start:       mustTime(start),
		End:         mustTime(end),
		IsOff:       off,
		LocationID:  locationID,
	}
}

func TestProvidersWorking_FiltersRoster(t *testing.T) {
	reg := NewRegistry(
		[]domain.Therapist{
			therapist(1, true),
			therapist(2, true),
			therapist(3, false), // inactive, never returned
			therapist(4, true),
		},
		[]domain.ScheduleEntry{
			entry(1, time.Monday, "09:00", "18:00", false, nil),
			entry(2, time.Monday, "09:00", "18:00", true, nil), // day off
			entry(3, time.Monday, "09:00", "18:00", false, nil),
			entry(4, time.Tuesday, "10:00", "16:00", false, nil), // other weekday
		},
	)

	shifts, err := reg.ProvidersWorking(time.Monday, 0)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, int64(1), shifts[0].TherapistID)
	assert.Equal(t, "09:00", shifts[0].Start.String())
	assert.Equal(t, "18:00", shifts[0].End.String())
}

func TestProvidersWorking_LocationScoping(t *testing.T) {
	reg := NewRegistry(
		[]domain.Therapist{therapist(1, true), therapist(2, true)},
		[]domain.ScheduleEntry{
			// Therapist 1 floats between locations (no scoping).
			entry(1, time.Monday, "09:00", "18:00", false, nil),
			// Therapist 2 only works at location 7.
			entry(2, time.Monday, "10:00", "17:00", false, ptr.Ptr(int64(7))),
		},
	)

	atSeven, err := reg.ProvidersWorking(time.Monday, 7)
	require.NoError(t, err)
	assert.Len(t, atSeven, 2)

	atOther, err := reg.ProvidersWorking(time.Monday, 9)
	require.NoError(t, err)
	require.Len(t, atOther, 1)
	assert.Equal(t, int64(1), atOther[0].TherapistID)

	// No filter: both match.
	all, err := reg.ProvidersWorking(time.Monday, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProvidersWorking_ScopedEntryWinsOverUnscoped(t *testing.T) {
	reg := NewRegistry(
		[]domain.Therapist{therapist(1, true)},
		[]domain.ScheduleEntry{
			entry(1, time.Monday, "09:00", "18:00", false, nil),
			entry(1, time.Monday, "12:00", "20:00", false, ptr.Ptr(int64(7))),
		},
	)

	shifts, err := reg.ProvidersWorking(time.Monday, 7)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "12:00", shifts[0].Start.String())
}

func TestProvidersWorking_EmptyIsNotAnError(t *testing.T) {
	reg := NewRegistry(nil, nil)

	shifts, err := reg.ProvidersWorking(time.Sunday, 0)
	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestProvidersWorking_InvalidWeekday(t *testing.T) {
	reg := NewRegistry(nil, nil)

	_, err := reg.ProvidersWorking(time.Weekday(7), 0)
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestProvidersWorking_SkipsEmptyWindow(t *testing.T) {
	reg := NewRegistry(
		[]domain.Therapist{therapist(1, true)},
		[]domain.ScheduleEntry{
			entry(1, time.Monday, "18:00", "09:00", false, nil), // end before start
		},
	)

	shifts, err := reg.ProvidersWorking(time.Monday, 0)
	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestShiftFor(t *testing.T) {
	reg := NewRegistry(
		[]domain.Therapist{therapist(1, true), therapist(2, true)},
		[]domain.ScheduleEntry{
			entry(1, time.Monday, "09:00", "18:00", false, nil),
		},
	)

	shift, ok, err := reg.ShiftFor(1, time.Monday, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "09:00", shift.Start.String())

	_, ok, err = reg.ShiftFor(2, time.Monday, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProviderShift_Covers(t *testing.T) {
	s := ProviderShift{TherapistID: 1, Start: mustTime("09:00"), End: mustTime("18:00")}

	assert.True(t, s.Covers(mustTime("09:00"), mustTime("10:00")))
	// Inclusive shift end: booking ending exactly at 18:00 fits.
	assert.True(t, s.Covers(mustTime("17:00"), mustTime("18:00")))
	assert.False(t, s.Covers(mustTime("17:30"), mustTime("18:30")))
	assert.False(t, s.Covers(mustTime("08:30"), mustTime("09:30")))
}
