package get_available_spaces

import "github.com/Eldarfox/easy-parking-maps/internal/domain"

// Request модель запроса доступных мест
type Request struct {
	ParkingID string           // ID парковки из каталога
	Date      domain.Date      // дата бронирования
	Hours     domain.HourRange // кандидатский диапазон часов
}

// Response модель ответа со списками мест
type Response struct {
	ParkingID   string // ID парковки
	TotalSpaces int    // всего мест на парковке
	Free        []int  // свободные места для диапазона
	Unavailable []int  // занятые места для диапазона
}
