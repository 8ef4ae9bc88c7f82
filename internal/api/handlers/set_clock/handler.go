package set_clock

import (
	"errors"
	"net/http"
	"time"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/service/virtualclock"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM:SS"
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

// SetClockRequest HTTP request model
type SetClockRequest struct {
	Now string `json:"now"` // "2024-01-15 14:00:00"
}

// Handle PUT /api/v1/clock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetClockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	t, err := time.ParseInLocation(domain.ClockFormat, req.Now, time.Local)
	if err != nil {
		h.logger.Warn("PUT /clock - Invalid time %q", req.Now)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.clock.SetNow(r.Context(), t); err != nil {
		if errors.Is(err, virtualclock.ErrInvalidTime) {
			h.logger.Warn("PUT /clock - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		h.logger.Error("PUT /clock - Failed to set clock: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /clock - Virtual clock set to %s", req.Now)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleReset DELETE /api/v1/clock
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.clock.Reset(r.Context()); err != nil {
		h.logger.Error("DELETE /clock - Failed to reset clock: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /clock - Virtual clock reset to real time")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
