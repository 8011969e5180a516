package inbound

import (
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/report"
)

type CalculateResponse struct {
	report.Record
	Metadata MetadataResponse `json:"metadata"`
}

type MetadataResponse struct {
	AirportProvider string `json:"airport_provider"`
	CalculationMs   int64  `json:"calculation_ms"`
	CacheHit        bool   `json:"cache_hit"`
}

type AircraftResponse struct {
	TypeCode      string          `json:"type_code"`
	FuelPer100km  entity.Quantity `json:"fuel_per_100km"`
	MaxPassengers entity.Quantity `json:"max_passengers"`
	EmptyWeight   entity.Quantity `json:"empty_weight"`
	MaxZFW        entity.Quantity `json:"max_zfw"`
	MaxTOW        entity.Quantity `json:"max_tow"`
	MaxLW         entity.Quantity `json:"max_lw"`
}
