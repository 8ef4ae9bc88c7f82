package create_booking

import (
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	createBooking "github.com/Eldarfox/easy-parking-maps/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ParkingID string `json:"parkingId"`
	SpaceNum  int    `json:"spaceNum"`
	Date      string `json:"date"`   // "2024-01-15" или "15.01.2024"
	Time      string `json:"time"`   // "14:00 - 18:00"
	Tariff    string `json:"tariff"` // hourly | daily | night
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	ParkingID   string `json:"parkingId"`
	ParkingName string `json:"parkingName"`
	SpaceNum    int    `json:"spaceNum"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Price       int64  `json:"price"`
	Balance     int64  `json:"balance"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	hours, err := domain.ParseHourRange(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ParkingID: r.ParkingID,
		SpaceNum:  r.SpaceNum,
		Date:      date,
		Hours:     hours,
		Tariff:    domain.TariffKind(r.Tariff),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Status:      resp.Status,
		ParkingID:   resp.ParkingID,
		ParkingName: resp.ParkingName,
		SpaceNum:    resp.SpaceNum,
		Date:        resp.Date.String(),
		Time:        resp.TimeText,
		Price:       resp.Price,
		Balance:     resp.Balance,
	}
}
