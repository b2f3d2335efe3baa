package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	getAvailableSlots "github.com/Aryan-Wadhawan/masaje-app/internal/usecase/get_available_slots"
)

const (
	msgInvalidLocationID = "invalid location id"
	msgInvalidDate       = "invalid date, expected YYYY-MM-DD"
	msgServiceNotFound   = "service not found"
	msgDateTooFar        = "date is too far in the future"
	msgInvalidInput      = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-slots?date=YYYY-MM-DD&services=CODE,CODE
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var serviceCodes []string
	if raw := r.URL.Query().Get("services"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				serviceCodes = append(serviceCodes, code)
			}
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		LocationID:   locationID,
		Date:         date,
		ServiceCodes: serviceCodes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: location=%d, services=%v", locationID, serviceCodes)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed: location=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
