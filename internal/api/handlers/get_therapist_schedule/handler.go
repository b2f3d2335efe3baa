package get_therapist_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules"
)

const (
	msgInvalidTherapistID = "invalid therapist id"
	msgTherapistNotFound  = "therapist not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{therapistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := strconv.ParseInt(mux.Vars(r)["therapistId"], 10, 64)
	if err != nil || therapistID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	result, err := h.service.GetTherapistSchedule(r.Context(), therapistID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrTherapistNotFound):
			handlers.RespondNotFound(w, msgTherapistNotFound)
		default:
			h.logger.Error("GET /therapists/{therapistId}/schedule - Failed: therapist=%d, error=%v", therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
