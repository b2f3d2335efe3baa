package create_booking

import (
	"errors"
	"net/http"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	createBooking "github.com/Aryan-Wadhawan/masaje-app/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDateOrTime     = "invalid bookingDate or startTime, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput          = "invalid request data"
	msgInvalidBookingDate    = "booking date is in the past"
	msgDateTooFar            = "booking date is too far in the future"
	msgTooLateToBook         = "too late to book this slot"
	msgServiceNotFound       = "service not found"
	msgInvalidStartTime      = "start time is not a bookable slot"
	msgLocationClosed        = "no therapist is working over the requested time"
	msgSlotNotAvailable      = "the requested slot is fully booked"
	msgTherapistNotFound     = "therapist not found"
	msgTherapistNotAvailable = "therapist is not working over the requested time"
	msgTherapistConflict     = "therapist already has a booking over the requested time"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: location=%d, start=%s", req.LocationID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTherapistConflict):
			h.logger.Warn("POST /bookings - Therapist conflict: location=%d, therapist=%v", req.LocationID, req.TherapistID)
			handlers.RespondConflict(w, msgTherapistConflict)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrTherapistNotFound):
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, createBooking.ErrTherapistNotAvailable):
			handlers.RespondConflict(w, msgTherapistNotAvailable)

		case errors.Is(err, createBooking.ErrLocationClosed):
			handlers.RespondBadRequest(w, msgLocationClosed)

		case errors.Is(err, createBooking.ErrInvalidStartTime):
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: location=%d, error=%v", req.LocationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: reference=%s, location=%d", result.Reference, req.LocationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
