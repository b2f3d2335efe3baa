package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings"
)

const (
	msgMissingReference = "booking reference is required"
	msgBookingNotFound  = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if reference == "" {
		handlers.RespondBadRequest(w, msgMissingReference)
		return
	}

	result, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("GET /bookings/{reference} - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
