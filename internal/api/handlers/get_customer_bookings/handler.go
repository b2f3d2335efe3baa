package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings/models"
)

const (
	msgMissingPhone = "phone parameter is required"
	msgInvalidInput = "invalid request parameters"
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

// Handle GET /api/v1/bookings?phone=...&status=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	phone := query.Get("phone")
	if phone == "" {
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	req := &models.GetCustomerBookingsRequest{Phone: phone}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /bookings - Failed: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
