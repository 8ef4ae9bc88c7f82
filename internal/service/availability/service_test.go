package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

type stubStore struct {
	bookings []*domain.Booking
}

func (s *stubStore) List(_ context.Context) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() domain.Date {
	return domain.NewDate(2024, 1, 15)
}

func TestService_DisabledHoursFor(t *testing.T) {
	store := &stubStore{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusReserved, ParkingID: "1", SpaceNum: 3, Date: testDate(), Hours: domain.NewHourRange(14, 17)},
		{ID: 2, Status: domain.StatusActive, ParkingID: "1", SpaceNum: 3, Date: testDate(), Hours: domain.NewHourRange(9, 10)},
		{ID: 3, Status: domain.StatusReserved, ParkingID: "1", SpaceNum: 4, Date: testDate(), Hours: domain.NewHourRange(11, 12)},
		{ID: 4, Status: domain.StatusReserved, ParkingID: "2", SpaceNum: 3, Date: testDate(), Hours: domain.NewHourRange(20, 21)},
	}}
	svc := NewService(store, nopLogger{})

	hours, err := svc.DisabledHoursFor(context.Background(), "1", testDate(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 10, 14, 15, 16, 17}, hours)
}

func TestService_DisabledHoursFor_CompletedIgnored(t *testing.T) {
	store := &stubStore{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusCompleted, ParkingID: "1", SpaceNum: 3, Date: testDate(), Hours: domain.NewHourRange(14, 17)},
	}}
	svc := NewService(store, nopLogger{})

	hours, err := svc.DisabledHoursFor(context.Background(), "1", testDate(), 3)
	require.NoError(t, err)
	assert.Empty(t, hours)
}

func TestService_DisabledHoursFor_NightWrapUnrolls(t *testing.T) {
	store := &stubStore{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusReserved, ParkingID: "1", SpaceNum: 0, Date: testDate(), Hours: domain.NewHourRange(22, 1)},
	}}
	svc := NewService(store, nopLogger{})

	hours, err := svc.DisabledHoursFor(context.Background(), "1", testDate(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 22, 23}, hours)
}

func TestService_UnavailableSpaces(t *testing.T) {
	store := &stubStore{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusReserved, ParkingID: "1", SpaceNum: 2, Date: testDate(), Hours: domain.NewHourRange(14, 17)},
		{ID: 2, Status: domain.StatusReserved, ParkingID: "1", SpaceNum: 5, Date: testDate(), Hours: domain.NewHourRange(18, 20)},
		{ID: 3, Status: domain.StatusCompleted, ParkingID: "1", SpaceNum: 7, Date: testDate(), Hours: domain.NewHourRange(14, 17)},
	}}
	svc := NewService(store, nopLogger{})

	// Диапазон [17, 19] задевает оба бронирования по включительной границе
	spaces, err := svc.UnavailableSpaces(context.Background(), "1", testDate(), domain.NewHourRange(17, 19))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, spaces)

	// [10, 13] не пересекается ни с одним
	spaces, err = svc.UnavailableSpaces(context.Background(), "1", testDate(), domain.NewHourRange(10, 13))
	require.NoError(t, err)
	assert.Empty(t, spaces)
}

func TestService_UnavailableSpaces_InvalidRange(t *testing.T) {
	svc := NewService(&stubStore{}, nopLogger{})

	_, err := svc.UnavailableSpaces(context.Background(), "1", testDate(), domain.HourRange{Start: -1, End: 5})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_FreeSpaces(t *testing.T) {
	store := &stubStore{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusReserved, ParkingID: "1", SpaceNum: 0, Date: testDate(), Hours: domain.NewHourRange(14, 17)},
		{ID: 2, Status: domain.StatusActive, ParkingID: "1", SpaceNum: 2, Date: testDate(), Hours: domain.NewHourRange(15, 16)},
	}}
	svc := NewService(store, nopLogger{})

	parking := &domain.Parking{ID: "1", TotalSpaces: 4}
	free, err := svc.FreeSpaces(context.Background(), parking, testDate(), domain.NewHourRange(14, 17))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, free)
}
