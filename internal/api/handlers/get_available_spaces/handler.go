package get_available_spaces

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	getAvailableSpaces "github.com/Eldarfox/easy-parking-maps/internal/usecase/get_available_spaces"
)

const (
	msgInvalidQuery    = "некорректные параметры date или time"
	msgParkingNotFound = "парковка не найдена"
)

type Handler struct {
	useCase GetAvailableSpacesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSpacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/parkings/{id}/available-spaces?date=2024-01-15&time=14:00+-+18:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parkingID := mux.Vars(r)["id"]
	query := r.URL.Query()

	useCaseReq, err := toUseCaseRequest(parkingID, query.Get("date"), query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /parkings/%s/available-spaces - Invalid query: %v", parkingID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSpaces.ErrParkingNotFound):
			h.logger.Warn("GET /parkings/%s/available-spaces - Parking not found", parkingID)
			handlers.RespondNotFound(w, msgParkingNotFound)

		case errors.Is(err, getAvailableSpaces.ErrInvalidInput):
			h.logger.Warn("GET /parkings/%s/available-spaces - Invalid input: %v", parkingID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /parkings/%s/available-spaces - Failed: %v", parkingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
