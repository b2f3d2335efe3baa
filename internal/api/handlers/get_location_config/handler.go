package get_location_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig"
)

const msgInvalidLocationID = "invalid location id"

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

// Handle GET /api/v1/locations/{locationId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.service.GetLocationConfig(r.Context(), locationID)
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLocationID)
		default:
			h.logger.Error("GET /locations/{locationId}/config - Failed: location=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
