package update_location_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig/models"
)

const (
	msgInvalidLocationID  = "invalid location id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidConfig      = "invalid configuration values"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/locations/{locationId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locations/{locationId}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateLocationConfig(r.Context(), locationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidConfig)
		default:
			h.logger.Error("PUT /locations/{locationId}/config - Failed: location=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
