package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	bookingsService "github.com/Eldarfox/easy-parking-maps/internal/service/bookings"
)

const (
	msgInvalidID       = "некорректный идентификатор бронирования"
	msgBookingNotFound = "бронирование не найдено"
	msgCannotCancel    = "бронирование уже нельзя отменить"
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

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrCannotCancel):
			h.logger.Warn("DELETE /bookings/%d - Cannot cancel", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Booking cancelled", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
