package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
)

var (
	ErrUnknownAircraftType = errors.New("unknown aircraft type")
	ErrUnknownAirport      = errors.New("unknown airport")
	ErrTemporary           = errors.New("temporary provider error")
	ErrMissingAPIKey       = errors.New("api key is missing")
)

type PerformanceProvider interface {
	Lookup(ctx context.Context, typeCode string) (entity.AircraftPerformance, error)
}

type AirportProvider interface {
	Name() string
	Lookup(ctx context.Context, icao string) (entity.AirportLocation, error)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
