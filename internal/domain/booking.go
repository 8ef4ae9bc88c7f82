package domain

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusReserved  BookingStatus = "reserved"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
)

// ValidStatus проверяет, что статус известен системе
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusReserved, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Booking represents a parking space reservation
type Booking struct {
	ID        int64
	Status    BookingStatus
	ParkingID string
	SpaceNum  int // номер места, нумерация с нуля
	Date      Date
	Hours     HourRange
	Price     int64
}

// IsCompleted returns true if the booking has finished
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// Blocks returns true if the booking still occupies its space
// (учитывается при расчёте доступности)
func (b *Booking) Blocks() bool {
	return b.Status != StatusCompleted
}
