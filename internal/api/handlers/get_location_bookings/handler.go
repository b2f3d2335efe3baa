package get_location_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings/models"
)

const (
	msgInvalidLocationID  = "invalid location id"
	msgInvalidTherapistID = "invalid therapistId parameter"
	msgInvalidDate        = "invalid date parameter, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid request parameters"
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

// Handle GET /api/v1/locations/{locationId}/bookings
// Query parameters: therapistId, startDate, endDate, status, includeInactive.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	req := &models.GetLocationBookingsRequest{LocationID: locationID}
	query := r.URL.Query()

	if raw := query.Get("therapistId"); raw != "" {
		therapistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || therapistID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidTherapistID)
			return
		}
		req.TherapistID = &therapistID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetLocationBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /locations/{locationId}/bookings - Failed: location=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
