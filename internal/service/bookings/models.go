package bookings

import "github.com/Eldarfox/easy-parking-maps/internal/domain"

// BookingView бронирование, обогащённое данными парковки для выдачи наружу
type BookingView struct {
	ID             int64
	Status         domain.BookingStatus
	ParkingID      string
	ParkingName    string
	ParkingAddress string
	SpaceNum       int
	Date           domain.Date
	TimeText       string
	Price          int64
	HourlyRate     int64
	CanCancel      bool
}
