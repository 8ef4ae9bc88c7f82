package filestore

import (
	"encoding/json"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

// Кэш справочника парковок (ключ parkings_data_lovable).
// Формат записей исторический: поля type/price в прайс-листе.

type parkingRecord struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	Lat         float64             `json:"lat"`
	Lng         float64             `json:"lng"`
	Prices      []priceRecord       `json:"prices"`
	Distance    int                 `json:"distance"`
	TotalSpaces int                 `json:"totalSpaces"`
	NightHours  *hourWindowRecord   `json:"nightHours,omitempty"`
	Working     hourWindowRecord    `json:"workingHours"`
}

type priceRecord struct {
	Type     string `json:"type"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
}

type hourWindowRecord struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// LoadParkings читает кэш справочника; отсутствующий или нечитаемый
// кэш даёт пустой список
func (s *Store) LoadParkings() []*domain.Parking {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.read(domain.KeyParkingsCache)
	if !ok {
		return nil
	}
	var records []parkingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	out := make([]*domain.Parking, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" || rec.TotalSpaces < 1 {
			continue
		}
		p := &domain.Parking{
			ID:             rec.ID,
			Name:           rec.Name,
			Address:        rec.Address,
			Lat:            rec.Lat,
			Lng:            rec.Lng,
			DistanceMeters: rec.Distance,
			TotalSpaces:    rec.TotalSpaces,
			WorkingHours:   domain.HourWindow{From: rec.Working.From, To: rec.Working.To},
		}
		for _, pr := range rec.Prices {
			p.Prices = append(p.Prices, domain.Price{Label: pr.Type, Amount: pr.Price, Currency: pr.Currency})
		}
		if rec.NightHours != nil {
			p.NightHours = &domain.HourWindow{From: rec.NightHours.From, To: rec.NightHours.To}
		}
		out = append(out, p)
	}
	return out
}

// SaveParkings записывает кэш справочника
func (s *Store) SaveParkings(parkings []*domain.Parking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]parkingRecord, 0, len(parkings))
	for _, p := range parkings {
		rec := parkingRecord{
			ID:          p.ID,
			Name:        p.Name,
			Address:     p.Address,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Distance:    p.DistanceMeters,
			TotalSpaces: p.TotalSpaces,
			Working:     hourWindowRecord{From: p.WorkingHours.From, To: p.WorkingHours.To},
		}
		for _, pr := range p.Prices {
			rec.Prices = append(rec.Prices, priceRecord{Type: pr.Label, Price: pr.Amount, Currency: pr.Currency})
		}
		if p.NightHours != nil {
			rec.NightHours = &hourWindowRecord{From: p.NightHours.From, To: p.NightHours.To}
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.write(domain.KeyParkingsCache, data)
}
