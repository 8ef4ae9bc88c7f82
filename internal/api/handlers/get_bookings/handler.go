package get_bookings

import (
	"net/http"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		response = append(response, FromView(v))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
