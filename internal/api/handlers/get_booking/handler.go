package get_booking

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

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	ParkingID      string `json:"parkingId"`
	ParkingName    string `json:"parkingName"`
	ParkingAddress string `json:"parkingAddress"`
	SpaceNum       int    `json:"spaceNum"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Price          int64  `json:"price"`
	HourlyRate     int64  `json:"hourlyRate"`
	CanCancel      bool   `json:"canCancel"`
}

// Handle GET /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	view, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/%d - Booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		ID:             view.ID,
		Status:         string(view.Status),
		ParkingID:      view.ParkingID,
		ParkingName:    view.ParkingName,
		ParkingAddress: view.ParkingAddress,
		SpaceNum:       view.SpaceNum,
		Date:           view.Date.String(),
		Time:           view.TimeText,
		Price:          view.Price,
		HourlyRate:     view.HourlyRate,
		CanCancel:      view.CanCancel,
	})
}
