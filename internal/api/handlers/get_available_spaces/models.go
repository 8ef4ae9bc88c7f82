package get_available_spaces

import (
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	getAvailableSpaces "github.com/Eldarfox/easy-parking-maps/internal/usecase/get_available_spaces"
)

// AvailableSpacesResponse HTTP response model
type AvailableSpacesResponse struct {
	ParkingID   string `json:"parkingId"`
	TotalSpaces int    `json:"totalSpaces"`
	Free        []int  `json:"free"`
	Unavailable []int  `json:"unavailable"`
}

// toUseCaseRequest конвертирует query-параметры в модель use case
func toUseCaseRequest(parkingID, dateText, timeText string) (*getAvailableSpaces.Request, error) {
	date, err := domain.ParseDate(dateText)
	if err != nil {
		return nil, err
	}

	hours, err := domain.ParseHourRange(timeText)
	if err != nil {
		return nil, err
	}

	return &getAvailableSpaces.Request{
		ParkingID: parkingID,
		Date:      date,
		Hours:     hours,
	}, nil
}

// fromUseCaseResponse конвертирует ответ use case в HTTP response
func fromUseCaseResponse(resp *getAvailableSpaces.Response) *AvailableSpacesResponse {
	return &AvailableSpacesResponse{
		ParkingID:   resp.ParkingID,
		TotalSpaces: resp.TotalSpaces,
		Free:        resp.Free,
		Unavailable: resp.Unavailable,
	}
}
