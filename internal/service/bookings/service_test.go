package bookings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	bookingRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/booking"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		f.bookings[b.Reference] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := f.bookings[reference]
	if !ok {
		return nil, fmt.Errorf("%w: reference=%s", bookingRepo.ErrBookingNotFound, reference)
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomerPhone(_ context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CustomerPhone != phone {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByLocationWithFilter(_ context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.LocationID != filter.LocationID {
			continue
		}
		if !filter.IncludeInactive && filter.Status == nil && !b.IsActive() {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, reference string, status domain.BookingStatus) error {
	b, ok := f.bookings[reference]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, reference string, reason string) error {
	b, ok := f.bookings[reference]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !b.CanBeCancelled() {
		return bookingRepo.ErrCannotCancel
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(ref string) *domain.Booking {
	return &domain.Booking{
		Reference:       ref,
		LocationID:      1,
		BookingDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		CustomerName:    "Ganon Dorf",
		CustomerPhone:   "+34600111222",
	}
}

func TestGetByReference(t *testing.T) {
	svc := NewService(newFakeBookingRepo(pendingBooking("ref-1")), nopLogger{})

	resp, err := svc.GetByReference(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByReference(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings(t *testing.T) {
	b1 := pendingBooking("ref-1")
	b2 := pendingBooking("ref-2")
	b2.Status = domain.StatusCancelled
	svc := NewService(newFakeBookingRepo(b1, b2), nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{Phone: "+34600111222"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	status := "cancelled"
	resp, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{Phone: "+34600111222", Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "ref-2", resp.Bookings[0].Reference)

	_, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{Phone: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := "sleeping"
	_, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{Phone: "+34600111222", Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetLocationBookings(t *testing.T) {
	b1 := pendingBooking("ref-1")
	b2 := pendingBooking("ref-2")
	b2.Status = domain.StatusCancelled
	svc := NewService(newFakeBookingRepo(b1, b2), nopLogger{})

	resp, err := svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{LocationID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	resp, err = svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{LocationID: 1, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{LocationID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("ref-1"))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "ref-1", &models.CancelBookingRequest{CancellationReason: "change of plans"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings["ref-1"].Status)
	require.NotNil(t, repo.bookings["ref-1"].CancellationReason)
	assert.Equal(t, "change of plans", *repo.bookings["ref-1"].CancellationReason)

	// Cancelling twice is rejected: the booking is already terminal.
	err = svc.Cancel(context.Background(), "ref-1", &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_CompletedBooking(t *testing.T) {
	b := pendingBooking("ref-1")
	b.Status = domain.StatusCompleted
	svc := NewService(newFakeBookingRepo(b), nopLogger{})

	err := svc.Cancel(context.Background(), "ref-1", &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("ref-1"))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), "ref-1", &models.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, repo.bookings["ref-1"].Status)

	err = svc.UpdateStatus(context.Background(), "ref-1", &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.bookings["ref-1"].Status)
}

func TestUpdateStatus_RejectsInvalidTransitions(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking("ref-1"))
	svc := NewService(repo, nopLogger{})

	// pending -> completed skips approval.
	err := svc.UpdateStatus(context.Background(), "ref-1", &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Cancellation is not a manual status change.
	err = svc.UpdateStatus(context.Background(), "ref-1", &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(context.Background(), "ref-1", &models.UpdateStatusRequest{Status: "sleeping"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
