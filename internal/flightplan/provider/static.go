package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
)

// StaticAirportProvider serves airports from a fixed table. It backs the
// offline mode and tests.
type StaticAirportProvider struct {
	airports map[string]entity.AirportLocation
}

func NewStaticAirportProvider(airports []entity.AirportLocation) *StaticAirportProvider {
	m := make(map[string]entity.AirportLocation, len(airports))
	for _, a := range airports {
		m[normalizeCode(a.StationCode)] = a
	}
	return &StaticAirportProvider{airports: m}
}

// NewStaticAirportProviderFromFile reads a JSON array of
// {"icao": "ULLI", "latitude": 59.8, "longitude": 30.26} records.
func NewStaticAirportProviderFromFile(path string) (*StaticAirportProvider, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("static airports read file: %w", err)
	}

	var records []struct {
		ICAO      string  `json:"icao"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("static airports decode: %w", err)
	}

	airports := make([]entity.AirportLocation, 0, len(records))
	for _, r := range records {
		airports = append(airports, entity.AirportLocation{
			StationCode: normalizeCode(r.ICAO),
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		})
	}
	return NewStaticAirportProvider(airports), nil
}

func (s *StaticAirportProvider) Name() string {
	return "Static"
}

func (s *StaticAirportProvider) Lookup(ctx context.Context, icao string) (entity.AirportLocation, error) {
	if err := ctx.Err(); err != nil {
		return entity.AirportLocation{}, err
	}
	loc, ok := s.airports[normalizeCode(icao)]
	if !ok {
		return entity.AirportLocation{}, fmt.Errorf("%w: the airport with icao code %s does not exist", ErrUnknownAirport, icao)
	}
	return loc, nil
}
