package provider

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/calculator"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
)

//go:embed all:data/aircraft
var embeddedAircraft embed.FS

const (
	aircraftFile           = "__init__.json"
	aircraftCompressedFile = "__init__.json.zst"
)

// manufacturers maps the first letter of an ICAO type designator to the
// directory holding that manufacturer's models.
var manufacturers = map[byte]string{
	'a': "airbus",
	'b': "boeing",
	'c': "bombardier",
	'e': "embraer",
}

// AircraftTable serves performance limits from a tree of
// <manufacturer>/<model>/__init__.json files. A file may instead be stored
// zstd-compressed as __init__.json.zst.
type AircraftTable struct {
	fsys fs.FS
}

func NewAircraftTable(fsys fs.FS) *AircraftTable {
	return &AircraftTable{fsys: fsys}
}

// NewEmbeddedAircraftTable serves the data set compiled into the binary.
func NewEmbeddedAircraftTable() *AircraftTable {
	sub, err := fs.Sub(embeddedAircraft, "data/aircraft")
	if err != nil {
		panic(fmt.Sprintf("embedded aircraft data: %v", err))
	}
	return NewAircraftTable(sub)
}

func (t *AircraftTable) Lookup(ctx context.Context, typeCode string) (entity.AircraftPerformance, error) {
	if err := ctx.Err(); err != nil {
		return entity.AircraftPerformance{}, err
	}

	code := strings.TrimSpace(typeCode)
	if code == "" {
		return entity.AircraftPerformance{}, fmt.Errorf("%w: type code cannot be empty", ErrUnknownAircraftType)
	}

	model := strings.ToLower(code)
	manufacturer, ok := manufacturers[model[0]]
	if !ok {
		return entity.AircraftPerformance{}, fmt.Errorf("%w: manufacturer not found for aircraft %s", ErrUnknownAircraftType, code)
	}

	data, err := t.readModel(path.Join(manufacturer, model))
	if err != nil {
		return entity.AircraftPerformance{}, err
	}

	perf, err := decodePerformance(data, strings.ToUpper(code))
	if err != nil {
		return entity.AircraftPerformance{}, fmt.Errorf("aircraft %s: %w", code, err)
	}
	return perf, nil
}

func (t *AircraftTable) readModel(dir string) ([]byte, error) {
	data, err := fs.ReadFile(t.fsys, path.Join(dir, aircraftFile))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	compressed, err := fs.ReadFile(t.fsys, path.Join(dir, aircraftCompressedFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: no data found for aircraft %s", ErrUnknownAircraftType, path.Base(dir))
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	dec, err := zstd.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("zstd reader %s: %w", dir, err)
	}
	defer dec.Close()

	data, err = io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("zstd decode %s: %w", dir, err)
	}
	return data, nil
}

// decodePerformance reads a document of the form
//
//	{"B738": {"FuelOn100km": {"MAX": 2600}, "Passengers": {"MAX": 189},
//	          "ZWF": {"EMP": 41413, "MAX": 62732}, "TOW": {"MAX": 79016},
//	          "LW": {"MAX": 65317}}}
//
// Absent keys stay absent in the returned record and unrelated keys are
// ignored. A model entry or group that is not an object makes its fields
// present but invalid.
func decodePerformance(data []byte, code string) (entity.AircraftPerformance, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return entity.AircraftPerformance{}, fmt.Errorf("%w: decode document: %v", calculator.ErrInvalidPerformanceData, err)
	}

	raw, ok := lookupFold(doc, code)
	if !ok {
		return entity.AircraftPerformance{}, fmt.Errorf("%w: no entry for %s in performance data", ErrUnknownAircraftType, code)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var entry any
	if err := dec.Decode(&entry); err != nil {
		return entity.AircraftPerformance{}, fmt.Errorf("%w: decode %s: %v", calculator.ErrInvalidPerformanceData, code, err)
	}

	field := func(group, key string) entity.Quantity {
		groups, ok := entry.(map[string]any)
		if !ok {
			return entity.QuantityOf(entry)
		}
		values, ok := groups[group]
		if !ok {
			return entity.Quantity{}
		}
		obj, ok := values.(map[string]any)
		if !ok {
			return entity.QuantityOf(values)
		}
		v, ok := obj[key]
		if !ok {
			return entity.Quantity{}
		}
		return entity.QuantityOf(v)
	}

	return entity.AircraftPerformance{
		TypeCode:      code,
		FuelPer100km:  field("FuelOn100km", "MAX"),
		MaxPassengers: field("Passengers", "MAX"),
		EmptyWeight:   field("ZWF", "EMP"),
		MaxZFW:        field("ZWF", "MAX"),
		MaxTOW:        field("TOW", "MAX"),
		MaxLW:         field("LW", "MAX"),
	}, nil
}

func lookupFold[T any](m map[string]T, key string) (T, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
