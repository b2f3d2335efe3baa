package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeOfDay is returned when a value cannot be interpreted as a wall-clock time.
var ErrInvalidTimeOfDay = errors.New("types: invalid time of day")

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, stored as "HH:MM".
// It is the single in-process representation for schedule and booking times:
// all external encodings (HH:MM strings, HH:MM:SS columns, minutes since
// midnight) are normalized into it at the boundary.
//
// The zero value ("") means "not set"; "00:00" is midnight. "24:00" is allowed
// as an exclusive end-of-day boundary.
type TimeOfDay string

// NewTimeOfDay truncates t to the minute and returns it as a TimeOfDay.
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Format("15:04"))
}

// ParseTimeOfDay normalizes a "HH:MM" or "HH:MM:SS" string into a TimeOfDay.
// Seconds are dropped; the conversion is lossless to the minute.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	if hours < 0 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if hours > 24 || (hours == 24 && minutes != 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDay(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// FromMinutes converts minutes since midnight into a TimeOfDay.
// Accepts 0..1440 inclusive (1440 = "24:00", the exclusive end of the day).
func FromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes since midnight", ErrInvalidTimeOfDay, m)
	}
	return TimeOfDay(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate reports whether the value is a well-formed "HH:MM" time.
func (t TimeOfDay) Validate() error {
	_, err := ParseTimeOfDay(string(t))
	return err
}

// IsZero reports whether the value is unset.
func (t TimeOfDay) IsZero() bool {
	return t == ""
}

// Minutes returns the value as minutes since midnight.
// The value must be valid; call Validate first for untrusted input.
func (t TimeOfDay) Minutes() int {
	parsed, err := ParseTimeOfDay(string(t))
	if err != nil {
		return 0
	}
	parts := strings.Split(string(parsed), ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// AddMinutes returns the time shifted forward by n minutes.
// The result must stay within the same day (up to "24:00").
func (t TimeOfDay) AddMinutes(n int) (TimeOfDay, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + n)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// String returns the "HH:MM" representation.
func (t TimeOfDay) String() string {
	return string(t)
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as strings,
// []byte or time.Time depending on the driver path; all are normalized.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeOfDay(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeOfDay, src)
	}
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
