package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	configRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/config"
	serviceRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/service"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

func mustTime(s string) types.TimeOfDay {
	t, err := types.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeTherapistRepo struct {
	therapists []domain.Therapist
}

func (f *fakeTherapistRepo) GetAll(_ context.Context) ([]domain.Therapist, error) {
	return f.therapists, nil
}

type fakeScheduleRepo struct {
	entries []domain.ScheduleEntry
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, weekday time.Weekday) ([]domain.ScheduleEntry, error) {
	var out []domain.ScheduleEntry
	for _, e := range f.entries {
		if e.Weekday == weekday {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeConfigRepo struct {
	cfg *domain.LocationSlotsConfig
}

func (f *fakeConfigRepo) GetByLocation(_ context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	if f.cfg == nil {
		return nil, fmt.Errorf("%w: location=%d", configRepo.ErrConfigNotFound, locationID)
	}
	return f.cfg, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByLocationWithFilter(_ context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.LocationID != filter.LocationID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeServiceRepo struct {
	services []domain.Service
}

func (f *fakeServiceRepo) GetByCodes(_ context.Context, codes []string) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(codes))
	for _, code := range codes {
		found := false
		for _, s := range f.services {
			if s.Code == code {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: code=%s", serviceRepo.ErrServiceNotFound, code)
		}
	}
	return out, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
