// Package report renders a finished flight plan as the persisted JSON
// record or as a console summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
)

type Record struct {
	Aircraft   string     `json:"aircraft"`
	Departure  Station    `json:"departure"`
	Arrival    Station    `json:"arrival"`
	Parameters Parameters `json:"parameters"`
}

type Station struct {
	ICAO      string  `json:"icao"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Parameters struct {
	DistanceKm    int64    `json:"distance_km"`
	PassengersMax int64    `json:"passengers_max"`
	BlockFuelKg   int64    `json:"block_fuel_kg"`
	PayloadKg     int64    `json:"payload_kg"`
	CargoKg       int64    `json:"cargo_kg"`
	ZFW           Envelope `json:"zfw"`
	TOW           Envelope `json:"tow"`
	LW            Envelope `json:"lw"`
}

type Envelope struct {
	Est int64 `json:"est"`
	Max int64 `json:"max"`
}

// NewRecord truncates every derived value to whole kilograms/kilometres.
func NewRecord(plan entity.FlightPlan) Record {
	c := plan.Calculation
	return Record{
		Aircraft:  plan.Aircraft,
		Departure: station(plan.Departure),
		Arrival:   station(plan.Arrival),
		Parameters: Parameters{
			DistanceKm:    int64(c.DistanceKm),
			PassengersMax: c.PassengerCount,
			BlockFuelKg:   int64(c.BlockFuelKg),
			PayloadKg:     c.PayloadKg,
			CargoKg:       int64(c.CargoKg),
			ZFW:           Envelope{Est: c.EstimatedZFW, Max: c.MaxZFW},
			TOW:           Envelope{Est: c.EstimatedTOW, Max: c.MaxTOW},
			LW:            Envelope{Est: c.EstimatedLW, Max: c.MaxLW},
		},
	}
}

func station(loc entity.AirportLocation) Station {
	return Station{ICAO: loc.StationCode, Latitude: loc.Latitude, Longitude: loc.Longitude}
}

// FileName follows route-<AIRCRAFT>-<DEP>-to-<ARR>.json.
func FileName(plan entity.FlightPlan) string {
	return fmt.Sprintf("route-%s-%s-to-%s.json", plan.Aircraft, plan.Departure.StationCode, plan.Arrival.StationCode)
}

// Save writes the record into dir and returns the file path.
func Save(dir string, plan entity.FlightPlan) (string, error) {
	data, err := json.MarshalIndent(NewRecord(plan), "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(dir, FileName(plan))
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return "", fmt.Errorf("error saving json file: %w", err)
	}
	return path, nil
}

func Print(w io.Writer, plan entity.FlightPlan) error {
	c := plan.Calculation
	dep, arr := plan.Departure, plan.Arrival
	_, err := fmt.Fprintf(w,
		"\nAircraft: %s\n"+
			"%s lat:%v, lon:%v\n"+
			"%s lat:%v, lon:%v\n"+
			"Distance: %.0f km\n\n"+
			"Passengers [max]: %d\n"+
			"Block Fuel: %.0f kg\n"+
			"Payload: %d kg\n"+
			"Cargo: %.0f kg\n\n"+
			"ZFW est:%d, max:%d\n"+
			"TOW est:%d, max:%d\n"+
			"LW est:%d, max:%d\n",
		plan.Aircraft,
		dep.StationCode, dep.Latitude, dep.Longitude,
		arr.StationCode, arr.Latitude, arr.Longitude,
		c.DistanceKm,
		c.PassengerCount,
		c.BlockFuelKg,
		c.PayloadKg,
		c.CargoKg,
		c.EstimatedZFW, c.MaxZFW,
		c.EstimatedTOW, c.MaxTOW,
		c.EstimatedLW, c.MaxLW,
	)
	return err
}
