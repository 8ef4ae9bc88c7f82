package get_bookings

import bookingsService "github.com/Eldarfox/easy-parking-maps/internal/service/bookings"

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

// FromView конвертирует представление бронирования в HTTP response
func FromView(v *bookingsService.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		Status:         string(v.Status),
		ParkingID:      v.ParkingID,
		ParkingName:    v.ParkingName,
		ParkingAddress: v.ParkingAddress,
		SpaceNum:       v.SpaceNum,
		Date:           v.Date.String(),
		Time:           v.TimeText,
		Price:          v.Price,
		HourlyRate:     v.HourlyRate,
		CanCancel:      v.CanCancel,
	}
}
