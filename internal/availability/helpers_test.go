package availability

import (
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

func mustTime(s string) types.TimeOfDay {
	t, err := types.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(ref string, therapistID int64, start string, duration int, status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{
		Reference:       ref,
		LocationID:      1,
		BookingDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), // a Monday
		StartTime:       mustTime(start),
		DurationMinutes: duration,
		Status:          status,
	}
	if therapistID != 0 {
		b.TherapistID = &therapistID
	}
	return b
}
