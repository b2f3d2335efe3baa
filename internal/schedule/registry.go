// Package schedule implements the working-hours registry: given a weekday and
// a location, which therapists are on shift and over what window.
//
// The registry is a pure lookup over a snapshot of therapists and schedule
// entries. It performs no I/O and holds no mutable state, so a single instance
// may be shared by concurrent callers.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// ErrInvalidWeekday is returned for weekday values outside Sunday..Saturday.
var ErrInvalidWeekday = errors.New("schedule: invalid weekday")

// ProviderShift is one therapist's usable window on a given day.
type ProviderShift struct {
	TherapistID int64
	Start       types.TimeOfDay
	End         types.TimeOfDay
}

// Covers reports whether the shift fully contains [start, end].
// The shift end is inclusive: a booking ending exactly at shift end fits.
func (s ProviderShift) Covers(start, end types.TimeOfDay) bool {
	return !s.Start.IsAfter(start) && !s.End.IsBefore(end)
}

// Registry answers working-hours queries over an immutable snapshot.
type Registry struct {
	therapists map[int64]domain.Therapist
	entries    map[time.Weekday][]domain.ScheduleEntry
}

// NewRegistry builds a registry from a snapshot of therapists and their
// weekly schedule entries.
func NewRegistry(therapists []domain.Therapist, entries []domain.ScheduleEntry) *Registry {
	r := &Registry{
		therapists: make(map[int64]domain.Therapist, len(therapists)),
		entries:    make(map[time.Weekday][]domain.ScheduleEntry),
	}
	for _, t := range therapists {
		r.therapists[t.ID] = t
	}
	for _, e := range entries {
		r.entries[e.Weekday] = append(r.entries[e.Weekday], e)
	}
	return r
}

// ProvidersWorking returns the therapists on shift for the given weekday and
// location, with their usable windows. locationID 0 means no location filter.
//
// Excluded: inactive therapists, day-off entries, entries scoped to another
// location, and entries whose window is empty or malformed. A location-scoped
// entry wins over an unscoped one for the same therapist. An empty result
// means "no coverage", not an error.
func (r *Registry) ProvidersWorking(weekday time.Weekday, locationID int64) ([]ProviderShift, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(weekday))
	}

	// Most specific entry per therapist: location-scoped beats unscoped.
	chosen := make(map[int64]domain.ScheduleEntry)
	for _, e := range r.entries[weekday] {
		if !e.AppliesAt(locationID) {
			continue
		}
		prev, ok := chosen[e.TherapistID]
		if !ok || (e.IsLocationScoped() && !prev.IsLocationScoped()) {
			chosen[e.TherapistID] = e
		}
	}

	shifts := make([]ProviderShift, 0, len(chosen))
	for therapistID, e := range chosen {
		t, ok := r.therapists[therapistID]
		if !ok || !t.Active {
			continue
		}
		if e.IsOff {
			continue
		}
		if e.Start.Validate() != nil || e.End.Validate() != nil {
			continue
		}
		if !e.Start.IsBefore(e.End) {
			continue
		}
		shifts = append(shifts, ProviderShift{
			TherapistID: therapistID,
			Start:       e.Start,
			End:         e.End,
		})
	}

	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].TherapistID < shifts[j].TherapistID
	})
	return shifts, nil
}

// ShiftFor returns the shift of one therapist for the weekday and location,
// or false when the therapist is not working then.
func (r *Registry) ShiftFor(therapistID int64, weekday time.Weekday, locationID int64) (ProviderShift, bool, error) {
	shifts, err := r.ProvidersWorking(weekday, locationID)
	if err != nil {
		return ProviderShift{}, false, err
	}
	for _, s := range shifts {
		if s.TherapistID == therapistID {
			return s, true, nil
		}
	}
	return ProviderShift{}, false, nil
}
