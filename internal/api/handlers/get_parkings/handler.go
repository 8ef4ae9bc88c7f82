package get_parkings

import (
	"net/http"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
)

type Handler struct {
	catalog ParkingCatalog
	logger  Logger
}

func NewHandler(catalog ParkingCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/parkings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parkings, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("GET /parkings - Failed to list parkings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*ParkingResponse, 0, len(parkings))
	for _, p := range parkings {
		response = append(response, FromDomain(p))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
