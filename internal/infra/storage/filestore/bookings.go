package filestore

import (
	"context"
	"encoding/json"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage"
)

// Bookings файловое хранилище бронирований (ключ bookings_list_lovable)
type Bookings struct {
	store *Store
}

// bookingRecord запись бронирования в историческом JSON-формате
type bookingRecord struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	ParkingID string `json:"parkingId"`
	SpaceNum  int    `json:"spaceNum"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Price     int64  `json:"price"`
}

func toRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
		ID:        b.ID,
		Status:    string(b.Status),
		ParkingID: b.ParkingID,
		SpaceNum:  b.SpaceNum,
		Date:      b.Date.String(),
		Time:      b.Hours.String(),
		Price:     b.Price,
	}
}

// fromRecord конвертирует запись в доменную модель.
// Записи с нечитаемой датой, временем или статусом отбрасываются.
func fromRecord(rec bookingRecord) (*domain.Booking, bool) {
	date, err := domain.ParseDate(rec.Date)
	if err != nil {
		return nil, false
	}
	hours, err := domain.ParseHourRange(rec.Time)
	if err != nil {
		return nil, false
	}
	status := domain.BookingStatus(rec.Status)
	if !domain.ValidStatus(status) {
		return nil, false
	}
	return &domain.Booking{
		ID:        rec.ID,
		Status:    status,
		ParkingID: rec.ParkingID,
		SpaceNum:  rec.SpaceNum,
		Date:      date,
		Hours:     hours,
		Price:     rec.Price,
	}, true
}

// loadAll читает весь список; нечитаемый JSON даёт пустой список
func (s *Bookings) loadAll() []*domain.Booking {
	data, ok := s.store.read(domain.KeyBookings)
	if !ok {
		return nil
	}
	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	out := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		if b, ok := fromRecord(rec); ok {
			out = append(out, b)
		}
	}
	return out
}

func (s *Bookings) saveAll(list []*domain.Booking) error {
	records := make([]bookingRecord, 0, len(list))
	for _, b := range list {
		records = append(records, toRecord(b))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.store.write(domain.KeyBookings, data)
}

// List возвращает все бронирования
func (s *Bookings) List(ctx context.Context) ([]*domain.Booking, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.loadAll(), nil
}

// GetByID возвращает бронирование по идентификатору
func (s *Bookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, b := range s.loadAll() {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, storage.ErrBookingNotFound
}

// Create добавляет бронирование в список. Идентификатор - максимум
// существующих плюс один; писатель здесь единственный.
func (s *Bookings) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := s.loadAll()
	var maxID int64
	for _, b := range list {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	booking.ID = maxID + 1
	list = append(list, booking)

	if err := s.saveAll(list); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateStatus меняет статус бронирования
func (s *Bookings) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := s.loadAll()
	for _, b := range list {
		if b.ID == id {
			b.Status = status
			return s.saveAll(list)
		}
	}
	return storage.ErrBookingNotFound
}

// Delete удаляет бронирование из списка
func (s *Bookings) Delete(ctx context.Context, id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := s.loadAll()
	for i, b := range list {
		if b.ID == id {
			list = append(list[:i], list[i+1:]...)
			return s.saveAll(list)
		}
	}
	return storage.ErrBookingNotFound
}
