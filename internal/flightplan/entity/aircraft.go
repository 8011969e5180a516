package entity

import (
	"encoding/json"
	"math"
)

// Quantity is a raw performance value as found in the source data. It keeps
// absence and type information so that callers can tell a missing field
// from a malformed one.
type Quantity struct {
	raw     any
	present bool
}

func QuantityOf(v any) Quantity {
	return Quantity{raw: v, present: true}
}

func (q Quantity) Present() bool { return q.present }

func (q Quantity) Raw() any { return q.raw }

// Float reports the value as float64 when it is a finite number.
func (q Quantity) Float() (float64, bool) {
	if !q.present {
		return 0, false
	}
	var f float64
	switch v := q.raw.(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int reports the value as int64 when it is an integral number. Fractional
// numbers such as 189.5 are rejected.
func (q Quantity) Int() (int64, bool) {
	if !q.present {
		return 0, false
	}
	switch v := q.raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.present {
		return []byte("null"), nil
	}
	return json.Marshal(q.raw)
}

type AircraftPerformance struct {
	TypeCode      string
	FuelPer100km  Quantity
	MaxPassengers Quantity
	EmptyWeight   Quantity
	MaxZFW        Quantity
	MaxTOW        Quantity
	MaxLW         Quantity
}
