package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/ptr"
)

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

var dayBefore = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc         *UseCase
	therapists *fakeTherapistRepo
	schedules  *fakeScheduleRepo
	configs    *fakeConfigRepo
	bookings   *fakeBookingRepo
	services   *fakeServiceRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		therapists: &fakeTherapistRepo{therapists: []domain.Therapist{
			{ID: 1, EmployeeCode: "T-001", DisplayName: "Mink", Active: true},
		}},
		schedules: &fakeScheduleRepo{entries: []domain.ScheduleEntry{
			{ID: 1, TherapistID: 1, Weekday: time.Monday, Start: mustTime("09:00"), End: mustTime("18:00")},
		}},
		configs:  &fakeConfigRepo{},
		bookings: &fakeBookingRepo{},
		services: &fakeServiceRepo{services: []domain.Service{
			{Code: "thai-massage", Name: "Thai Massage", Price: 120, DurationMinutes: 90, Active: true},
			{Code: "foot-massage", Name: "Foot Massage", Price: 45, DurationMinutes: 30, Active: true},
		}},
	}
	f.uc = NewUseCase(f.therapists, f.schedules, f.configs, f.bookings, f.services, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: dayBefore}
	return f
}

func booking(start string, therapistID int64, status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{
		Reference:       "ref-" + start,
		LocationID:      1,
		BookingDate:     monday,
		StartTime:       mustTime(start),
		DurationMinutes: 60,
		Status:          status,
	}
	if therapistID != 0 {
		b.TherapistID = &therapistID
	}
	return b
}

func TestExecute_FullDayOneTherapist(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: monday})
	require.NoError(t, err)

	// One 09:00-18:00 shift on an hourly ladder: 09:00 through 17:00.
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:00", resp.Slots[8].StartTime.String())
	for _, s := range resp.Slots {
		assert.Equal(t, 1, s.AvailableSpots)
	}
}

func TestExecute_BookedSlotDisappears(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{booking("10:00", 1, domain.StatusApproved)}

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	for _, s := range resp.Slots {
		assert.NotEqual(t, "10:00", s.StartTime.String())
	}
}

func TestExecute_CancelledBookingDoesNotCount(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{booking("10:00", 1, domain.StatusCancelled)}

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: monday})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecute_ServiceDurationShortensLadder(t *testing.T) {
	f := newFixture(t)

	req := &Request{LocationID: 1, Date: monday, ServiceCodes: []string{"thai-massage", "foot-massage"}}
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 120 minutes: the last start that still fits before 18:00 is 16:00.
	assert.Equal(t, 120, resp.DurationMinutes)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "16:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture(t)

	req := &Request{LocationID: 1, Date: monday, ServiceCodes: []string{"hot-stones"}}
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NobodyWorking(t *testing.T) {
	f := newFixture(t)

	// Sunday has no schedule entries: empty answer, not an error.
	sunday := monday.AddDate(0, 0, -1)
	f.uc.timeProvider = &fixedTime{now: sunday.Add(-24 * time.Hour)}

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_LocationScopedEntryFiltersOtherBranch(t *testing.T) {
	f := newFixture(t)
	f.schedules.entries[0].LocationID = ptr.Ptr(int64(2))

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	resp, err = f.uc.Execute(context.Background(), &Request{LocationID: 2, Date: monday})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecute_CustomConfig(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultLocationSlotsConfig(1)
	cfg.OpenTime = mustTime("10:00")
	cfg.CloseTime = mustTime("14:00")
	cfg.SlotStepMinutes = 30
	f.configs.cfg = cfg
	f.schedules.entries[0].Start = mustTime("10:00")
	f.schedules.entries[0].End = mustTime("14:00")

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: monday})
	require.NoError(t, err)

	// 30-minute ladder from 10:00; the last 60-minute fit starts 13:00.
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "13:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestExecute_PastDateYieldsNoSlots(t *testing.T) {
	f := newFixture(t)

	// Friday before the reference Monday: valid question, empty answer.
	req := &Request{LocationID: 1, Date: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)}
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AdvanceBookingLimit(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultLocationSlotsConfig(1)
	cfg.AdvanceBookingDays = 7
	f.configs.cfg = cfg

	req := &Request{LocationID: 1, Date: monday.AddDate(0, 0, 14)}
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_SameDayNoticeFilter(t *testing.T) {
	f := newFixture(t)
	// Monday 14:30 with a 60-minute notice: slots before 15:30 are gone.
	f.uc.timeProvider = &fixedTime{now: monday.Add(14*time.Hour + 30*time.Minute)}

	resp, err := f.uc.Execute(context.Background(), &Request{LocationID: 1, Date: monday})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "16:00", resp.Slots[0].StartTime.String())
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{LocationID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{LocationID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
