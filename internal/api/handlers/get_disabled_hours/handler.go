package get_disabled_hours

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSpace = "некорректный номер места"
)

type Handler struct {
	availability AvailabilityService
	logger       Logger
}

func NewHandler(availability AvailabilityService, logger Logger) *Handler {
	return &Handler{
		availability: availability,
		logger:       logger,
	}
}

// DisabledHoursResponse HTTP response model
type DisabledHoursResponse struct {
	ParkingID string `json:"parkingId"`
	SpaceNum  int    `json:"spaceNum"`
	Date      string `json:"date"`
	Disabled  []int  `json:"disabled"`
}

// Handle GET /api/v1/parkings/{id}/disabled-hours?date=2024-01-15&spaceNum=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parkingID := mux.Vars(r)["id"]
	query := r.URL.Query()

	date, err := domain.ParseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /parkings/%s/disabled-hours - Invalid date %q", parkingID, query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	spaceNum, err := strconv.Atoi(query.Get("spaceNum"))
	if err != nil || spaceNum < 0 {
		h.logger.Warn("GET /parkings/%s/disabled-hours - Invalid spaceNum %q", parkingID, query.Get("spaceNum"))
		handlers.RespondBadRequest(w, msgInvalidSpace)
		return
	}

	disabled, err := h.availability.DisabledHoursFor(r.Context(), parkingID, date, spaceNum)
	if err != nil {
		h.logger.Error("GET /parkings/%s/disabled-hours - Failed: %v", parkingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DisabledHoursResponse{
		ParkingID: parkingID,
		SpaceNum:  spaceNum,
		Date:      date.String(),
		Disabled:  disabled,
	})
}
