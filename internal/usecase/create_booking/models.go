package create_booking

import "github.com/Eldarfox/easy-parking-maps/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	ParkingID string            // ID парковки из каталога
	SpaceNum  int               // номер места, нумерация с нуля
	Date      domain.Date       // дата бронирования
	Hours     domain.HourRange  // выбранный диапазон часов
	Tariff    domain.TariffKind // вид тарифа
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64       // ID созданного бронирования
	Status      string      // статус бронирования
	ParkingID   string      // ID парковки
	ParkingName string      // название парковки
	SpaceNum    int         // номер места
	Date        domain.Date // дата бронирования
	TimeText    string      // диапазон часов в текстовом виде
	Price       int64       // списанная стоимость, сом
	Balance     int64       // баланс кошелька после списания
}
