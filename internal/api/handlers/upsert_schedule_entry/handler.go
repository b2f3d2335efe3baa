package upsert_schedule_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules/models"
)

const (
	msgInvalidTherapistID = "invalid therapist id"
	msgInvalidRequestBody = "invalid request body"
	msgTherapistNotFound  = "therapist not found"
	msgInvalidInput       = "invalid schedule entry"
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

// Handle PUT /api/v1/therapists/{therapistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := strconv.ParseInt(mux.Vars(r)["therapistId"], 10, 64)
	if err != nil || therapistID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req models.UpsertEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /therapists/{therapistId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertEntry(r.Context(), therapistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrTherapistNotFound):
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /therapists/{therapistId}/schedule - Failed: therapist=%d, error=%v", therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
