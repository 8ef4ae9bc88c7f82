package catalog

import (
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/pkg/ptr"
)

// Default возвращает встроенный справочник парковок Бишкека
func Default() []*domain.Parking {
	return []*domain.Parking{
		{
			ID: "1", Name: "Крытая парковка Дордой Плаза", Address: "Дордой Плаза, Бишкек",
			Lat: 42.878633, Lng: 74.617215, DistanceMeters: 200, TotalSpaces: 4,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 70, Currency: "сом"},
				{Label: "Весь день", Amount: 350, Currency: "сом"},
				{Label: "Ночь", Amount: 120, Currency: "сом"},
			},
			NightHours:   ptr.Ptr(domain.HourWindow{From: 20, To: 8}),
			WorkingHours: domain.HourWindow{From: 7, To: 24},
		},
		{
			ID: "2", Name: "Крытая парковка ГУМ", Address: "ГУМ, Бишкек",
			Lat: 42.875413, Lng: 74.615353, DistanceMeters: 400, TotalSpaces: 2,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 80, Currency: "сом"},
				{Label: "Весь день", Amount: 400, Currency: "сом"},
				{Label: "Ночь", Amount: 150, Currency: "сом"},
			},
			NightHours:   ptr.Ptr(domain.HourWindow{From: 21, To: 7}),
			WorkingHours: domain.HourWindow{From: 8, To: 23},
		},
		{
			ID: "3", Name: "Парковка ЦУМ (центр города)", Address: "ЦУМ, Бишкек",
			Lat: 42.87591, Lng: 74.612875, DistanceMeters: 500, TotalSpaces: 3,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 60, Currency: "сом"},
				{Label: "Весь день", Amount: 280, Currency: "сом"},
				{Label: "Ночь", Amount: 100, Currency: "сом"},
			},
			NightHours:   ptr.Ptr(domain.HourWindow{From: 22, To: 6}),
			WorkingHours: domain.HourWindow{From: 7, To: 20},
		},
		{
			ID: "4", Name: "Подземная парковка Асанбай Центр", Address: "Асанбай Центр, Бишкек",
			Lat: 42.822968, Lng: 74.585654, DistanceMeters: 1800, TotalSpaces: 1,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 90, Currency: "сом"},
				{Label: "Весь день", Amount: 450, Currency: "сом"},
				{Label: "Ночь", Amount: 170, Currency: "сом"},
			},
			NightHours:   ptr.Ptr(domain.HourWindow{From: 19, To: 9}),
			WorkingHours: domain.HourWindow{From: 0, To: 24},
		},
		{
			ID: "5", Name: "Парковка ТРЦ Asia Mall", Address: "Asia Mall, Бишкек",
			Lat: 42.8547, Lng: 74.6035, DistanceMeters: 950, TotalSpaces: 2,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 75, Currency: "сом"},
				{Label: "Весь день", Amount: 320, Currency: "сом"},
				{Label: "Ночь", Amount: 90, Currency: "сом"},
			},
			NightHours:   ptr.Ptr(domain.HourWindow{From: 21, To: 7}),
			WorkingHours: domain.HourWindow{From: 8, To: 24},
		},
		{
			ID: "6", Name: "Парковка возле Ош базара", Address: "просп. Чуй, 123, Бишкек",
			Lat: 42.8663, Lng: 74.5831, DistanceMeters: 2100, TotalSpaces: 8,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 50, Currency: "сом"},
				{Label: "Весь день", Amount: 200, Currency: "сом"},
			},
			WorkingHours: domain.HourWindow{From: 6, To: 22},
		},
		{
			ID: "7", Name: "Парковка Vefa Center", Address: "Vefa Center, Бишкек",
			Lat: 42.8651, Lng: 74.6177, DistanceMeters: 1700, TotalSpaces: 10,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 85, Currency: "сом"},
				{Label: "Весь день", Amount: 500, Currency: "сом"},
			},
			WorkingHours: domain.HourWindow{From: 8, To: 21},
		},
		{
			ID: "8", Name: "Открытая парковка Драмтеатр", Address: "ул. Абдымомунова, 20, Бишкек",
			Lat: 42.8682, Lng: 74.6115, DistanceMeters: 1200, TotalSpaces: 6,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 60, Currency: "сом"},
			},
			WorkingHours: domain.HourWindow{From: 7, To: 19},
		},
		{
			ID: "9", Name: "Паркинг на площади Ала-Тоо", Address: "пл. Ала-Тоо, Бишкек",
			Lat: 42.8766, Lng: 74.6044, DistanceMeters: 400, TotalSpaces: 5,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 100, Currency: "сом"},
				{Label: "Весь день", Amount: 600, Currency: "сом"},
				{Label: "Ночь", Amount: 200, Currency: "сом"},
			},
			NightHours:   ptr.Ptr(domain.HourWindow{From: 22, To: 7}),
			WorkingHours: domain.HourWindow{From: 8, To: 24},
		},
		{
			ID: "10", Name: "Парковка Спорткомплекс Колос", Address: "ул. Киевская, 322, Бишкек",
			Lat: 42.8405, Lng: 74.6039, DistanceMeters: 2200, TotalSpaces: 11,
			Prices: []domain.Price{
				{Label: "1 час", Amount: 40, Currency: "сом"},
				{Label: "Весь день", Amount: 150, Currency: "сом"},
			},
			WorkingHours: domain.HourWindow{From: 8, To: 21},
		},
	}
}
