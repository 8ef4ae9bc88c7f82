package get_parkings

import "github.com/Eldarfox/easy-parking-maps/internal/domain"

// PriceResponse позиция прайс-листа
type PriceResponse struct {
	Label    string `json:"type"`
	Amount   int64  `json:"price"`
	Currency string `json:"currency"`
}

// HourWindowResponse окно часов
type HourWindowResponse struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ParkingResponse HTTP response model
type ParkingResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Address        string              `json:"address"`
	Lat            float64             `json:"lat"`
	Lng            float64             `json:"lng"`
	DistanceMeters int                 `json:"distance"`
	TotalSpaces    int                 `json:"totalSpaces"`
	Prices         []PriceResponse     `json:"prices"`
	NightHours     *HourWindowResponse `json:"nightHours,omitempty"`
	WorkingHours   HourWindowResponse  `json:"workingHours"`
}

// FromDomain конвертирует парковку в HTTP response
func FromDomain(p *domain.Parking) *ParkingResponse {
	resp := &ParkingResponse{
		ID:             p.ID,
		Name:           p.Name,
		Address:        p.Address,
		Lat:            p.Lat,
		Lng:            p.Lng,
		DistanceMeters: p.DistanceMeters,
		TotalSpaces:    p.TotalSpaces,
		Prices:         make([]PriceResponse, 0, len(p.Prices)),
		WorkingHours:   HourWindowResponse{From: p.WorkingHours.From, To: p.WorkingHours.To},
	}
	for _, price := range p.Prices {
		resp.Prices = append(resp.Prices, PriceResponse{
			Label:    price.Label,
			Amount:   price.Amount,
			Currency: price.Currency,
		})
	}
	if p.NightHours != nil {
		resp.NightHours = &HourWindowResponse{From: p.NightHours.From, To: p.NightHours.To}
	}
	return resp
}
