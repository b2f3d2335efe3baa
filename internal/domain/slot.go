package domain

import "github.com/Aryan-Wadhawan/masaje-app/pkg/types"

// Slot is a candidate booking start time with its remaining capacity.
// Computed fresh per request; never cached, since concurrent bookings
// invalidate prior results instantly.
type Slot struct {
	StartTime       types.TimeOfDay
	DurationMinutes int
	AvailableSpots  int // therapists still free to take a booking at this time
	TotalSpots      int // therapists whose shift covers the full interval
}

// IsFull reports whether the slot has no free spots left.
func (s *Slot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsFullyAvailable reports whether no booking occupies the slot yet.
func (s *Slot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

// OccupancyRate returns the occupancy as a percentage (0-100).
func (s *Slot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}
