package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when the date exceeds the advance-booking limit.
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook is returned when a same-day slot starts inside the notice window.
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrServiceNotFound is returned when a requested service code is unknown.
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidStartTime is returned when the start time is not on the slot ladder.
	ErrInvalidStartTime = errors.New("create_booking: start time is not a valid slot")

	// ErrLocationClosed is returned when no shift covers the requested interval.
	ErrLocationClosed = errors.New("create_booking: no therapist working over the requested time")

	// ErrSlotNotAvailable is returned when every covering therapist is already booked.
	ErrSlotNotAvailable = errors.New("create_booking: slot is fully booked")

	// ErrTherapistNotFound is returned when the requested therapist does not exist or is inactive.
	ErrTherapistNotFound = errors.New("create_booking: therapist not found")

	// ErrTherapistNotAvailable is returned when the therapist's shift does not cover the interval.
	ErrTherapistNotAvailable = errors.New("create_booking: therapist is not working over the requested time")

	// ErrTherapistConflict is returned when the therapist has an overlapping booking.
	ErrTherapistConflict = errors.New("create_booking: therapist has an overlapping booking")

	// ErrInternal is returned for unexpected repository or engine failures.
	ErrInternal = errors.New("create_booking: internal error")
)
