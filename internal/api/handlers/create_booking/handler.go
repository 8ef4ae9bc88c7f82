package create_booking

import (
	"errors"
	"net/http"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	createBooking "github.com/Eldarfox/easy-parking-maps/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или диапазона часов"
	msgParkingNotFound    = "парковка не найдена"
	msgInvalidSpace       = "такого места нет на парковке"
	msgSpaceUnavailable   = "место занято на выбранное время"
	msgInsufficientFunds  = "недостаточно средств на кошельке"
	msgDateInPast         = "дата бронирования уже прошла"
	msgInvalidHours       = "диапазон часов недопустим для выбранного тарифа"
	msgNightNotOffered    = "на этой парковке нет ночного тарифа"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSpaceUnavailable):
			h.logger.Warn("POST /bookings - Space unavailable: parking=%s, space=%d", req.ParkingID, req.SpaceNum)
			handlers.RespondError(w, http.StatusConflict, msgSpaceUnavailable)

		case errors.Is(err, createBooking.ErrInsufficientFunds):
			h.logger.Warn("POST /bookings - Insufficient funds: parking=%s", req.ParkingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, createBooking.ErrParkingNotFound):
			h.logger.Warn("POST /bookings - Parking not found: parking=%s", req.ParkingID)
			handlers.RespondNotFound(w, msgParkingNotFound)

		case errors.Is(err, createBooking.ErrInvalidSpace):
			h.logger.Warn("POST /bookings - Invalid space: parking=%s, space=%d", req.ParkingID, req.SpaceNum)
			handlers.RespondBadRequest(w, msgInvalidSpace)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: parking=%s, date=%s", req.ParkingID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrNightNotOffered):
			h.logger.Warn("POST /bookings - Night tariff not offered: parking=%s", req.ParkingID)
			handlers.RespondBadRequest(w, msgNightNotOffered)

		case errors.Is(err, createBooking.ErrInvalidHours):
			h.logger.Warn("POST /bookings - Invalid hours: parking=%s, time=%s", req.ParkingID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: parking=%s, error=%v", req.ParkingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, parking=%s", result.ID, result.ParkingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
