package domain

// Форматы даты и времени
const (
	DateFormat       = "2006-01-02" // канонический формат даты
	LegacyDateFormat = "02.01.2006" // альтернативный формат из старых записей
	ClockFormat      = "2006-01-02 15:04:05"
)

// Часы, отображаемые в селекторе по умолчанию
const (
	DefaultFirstDisplayHour = 8
	DefaultLastDisplayHour  = 23
)

// CancelNoticeMinutes минимальный запас виртуального времени до начала
// бронирования, при котором отмена ещё разрешена
const CancelNoticeMinutes = 120

// Ключи файлового хранилища (наследие первой версии приложения)
const (
	KeyBookings      = "bookings_list_lovable"
	KeyWalletBalance = "cabinet_wallet_balance"
	KeyParkingsCache = "parkings_data_lovable"
	DefaultClockKey  = "mainClock"
)
