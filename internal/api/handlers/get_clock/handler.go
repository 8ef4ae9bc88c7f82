package get_clock

import (
	"net/http"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

type Handler struct {
	clock  ClockService
	logger Logger
}

func NewHandler(clock ClockService, logger Logger) *Handler {
	return &Handler{
		clock:  clock,
		logger: logger,
	}
}

// ClockResponse HTTP response model
type ClockResponse struct {
	Now       string `json:"now"`
	Simulated bool   `json:"simulated"`
}

// Handle GET /api/v1/clock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info := h.clock.GetInfo(r.Context())

	handlers.RespondJSON(w, http.StatusOK, ClockResponse{
		Now:       info.Now.Format(domain.ClockFormat),
		Simulated: info.Simulated,
	})
}
