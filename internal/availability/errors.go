package availability

import "errors"

var (
	// ErrInvalidDuration is returned for a zero or negative requested duration.
	ErrInvalidDuration = errors.New("availability: duration must be positive")

	// ErrInvalidInterval is returned when an interval's end is not after its start.
	ErrInvalidInterval = errors.New("availability: interval end must be after start")

	// ErrInvalidGrid is returned for a malformed slot grid.
	ErrInvalidGrid = errors.New("availability: invalid slot grid")
)
