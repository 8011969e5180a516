// Package calculator derives flight planning parameters from aircraft
// performance limits and the departure and arrival coordinates.
//
// The derivation runs in a fixed order: distance, block fuel, payload,
// cargo, zero-fuel weight, takeoff weight and landing weight. Every stage
// is a pure function of the previous outputs; the first failing stage
// aborts the chain and no partial result is returned.
package calculator

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/geo"
)

const (
	PassengerMassKg       = 104
	CargoPerPassengerKg   = 3.5
	CargoBaseline         = 14
	baseCoefficient       = 1.5
	coefficientStepPer100 = 0.3
)

type PerformanceLookup interface {
	Lookup(ctx context.Context, typeCode string) (entity.AircraftPerformance, error)
}

type AirportLookup interface {
	Lookup(ctx context.Context, icao string) (entity.AirportLocation, error)
}

// Compute resolves the aircraft and both airports through the given
// providers and runs Calculate on the result.
func Compute(
	ctx context.Context,
	depICAO, arrICAO, aircraftType string,
	performance PerformanceLookup,
	airports AirportLookup,
) (entity.FlightCalculation, error) {
	plan, err := ComputePlan(ctx, depICAO, arrICAO, aircraftType, performance, airports)
	if err != nil {
		return entity.FlightCalculation{}, err
	}
	return plan.Calculation, nil
}

// ComputePlan is Compute keeping the resolved aircraft and airports. The two
// airport lookups run concurrently and the first failure cancels the other.
func ComputePlan(
	ctx context.Context,
	depICAO, arrICAO, aircraftType string,
	performance PerformanceLookup,
	airports AirportLookup,
) (entity.FlightPlan, error) {
	perf, err := performance.Lookup(ctx, aircraftType)
	if err != nil {
		return entity.FlightPlan{}, fmt.Errorf("lookup aircraft %q: %w", aircraftType, err)
	}

	var dep, arr entity.AirportLocation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loc, err := airports.Lookup(gctx, depICAO)
		if err != nil {
			return fmt.Errorf("lookup departure %q: %w", depICAO, err)
		}
		dep = loc
		return nil
	})
	g.Go(func() error {
		loc, err := airports.Lookup(gctx, arrICAO)
		if err != nil {
			return fmt.Errorf("lookup arrival %q: %w", arrICAO, err)
		}
		arr = loc
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.FlightPlan{}, err
	}

	calc, err := Calculate(perf, dep, arr)
	if err != nil {
		return entity.FlightPlan{}, err
	}
	return entity.FlightPlan{
		Aircraft:    perf.TypeCode,
		Departure:   dep,
		Arrival:     arr,
		Calculation: calc,
	}, nil
}

func Calculate(perf entity.AircraftPerformance, dep, arr entity.AirportLocation) (entity.FlightCalculation, error) {
	distanceKm, err := Distance(dep, arr)
	if err != nil {
		return entity.FlightCalculation{}, err
	}

	blockFuel, err := BlockFuel(perf, distanceKm)
	if err != nil {
		return entity.FlightCalculation{}, err
	}

	passengers, payload, err := Payload(perf)
	if err != nil {
		return entity.FlightCalculation{}, err
	}

	cargo := Cargo(payload)

	zfw, err := ZeroFuelWeight(perf, payload)
	if err != nil {
		return entity.FlightCalculation{}, err
	}

	tow, err := TakeoffWeight(perf, zfw.EmptyWeight, blockFuel, payload)
	if err != nil {
		return entity.FlightCalculation{}, err
	}

	lw, err := LandingWeight(perf, tow.Estimated, blockFuel, cargo)
	if err != nil {
		return entity.FlightCalculation{}, err
	}

	return entity.FlightCalculation{
		DistanceKm:     distanceKm,
		BlockFuelKg:    blockFuel,
		PayloadKg:      payload,
		PassengerCount: passengers,
		CargoKg:        cargo,
		EmptyWeightKg:  zfw.EmptyWeight,
		EstimatedZFW:   zfw.Estimated,
		MaxZFW:         zfw.Max,
		EstimatedTOW:   tow.Estimated,
		MaxTOW:         tow.Max,
		EstimatedLW:    lw.Estimated,
		MaxLW:          lw.Max,
	}, nil
}

func Distance(dep, arr entity.AirportLocation) (float64, error) {
	d, err := geo.DistanceKm(dep.Latitude, dep.Longitude, arr.Latitude, arr.Longitude)
	if err != nil {
		return 0, fmt.Errorf("distance %s-%s: %w", dep.StationCode, arr.StationCode, err)
	}
	return d, nil
}

// Distance100 normalizes the distance per 100 km. The coefficient grows by
// 0.3 for every full 100 km flown.
func Distance100(distanceKm float64) (float64, error) {
	coefficient := baseCoefficient + math.Floor(distanceKm/100)*coefficientStepPer100
	if coefficient == 0 {
		return 0, fmt.Errorf("%w: normalization coefficient for %.3f km", ErrDivisionByZero, distanceKm)
	}
	return distanceKm / 100 / coefficient, nil
}

func BlockFuel(perf entity.AircraftPerformance, distanceKm float64) (float64, error) {
	fuel, err := nonNegativeNumber(perf.FuelPer100km, "fuel per 100 km")
	if err != nil {
		return 0, err
	}
	distance100, err := Distance100(distanceKm)
	if err != nil {
		return 0, err
	}
	return fuel * distance100, nil
}

// Payload returns the passenger count and the payload they represent.
func Payload(perf entity.AircraftPerformance) (int64, int64, error) {
	passengers, err := nonNegativeInt(perf.MaxPassengers, "max passengers")
	if err != nil {
		return 0, 0, err
	}
	if passengers > math.MaxInt64/PassengerMassKg {
		return 0, 0, fmt.Errorf("%w: max passengers %d overflows payload", ErrInvalidPerformanceData, passengers)
	}
	return passengers, passengers * PassengerMassKg, nil
}

func Cargo(payloadKg int64) float64 {
	return float64(payloadKg) * CargoPerPassengerKg / CargoBaseline
}

type ZFW struct {
	EmptyWeight int64
	Estimated   int64
	Max         int64
}

func ZeroFuelWeight(perf entity.AircraftPerformance, payloadKg int64) (ZFW, error) {
	if err := requirePresent(perf.EmptyWeight, "empty weight"); err != nil {
		return ZFW{}, err
	}
	if err := requirePresent(perf.MaxZFW, "max zero fuel weight"); err != nil {
		return ZFW{}, err
	}
	empty, err := nonNegativeInt(perf.EmptyWeight, "empty weight")
	if err != nil {
		return ZFW{}, err
	}
	maxZFW, err := nonNegativeInt(perf.MaxZFW, "max zero fuel weight")
	if err != nil {
		return ZFW{}, err
	}

	if empty > math.MaxInt64-payloadKg {
		return ZFW{}, fmt.Errorf("%w: empty weight %d overflows zero fuel weight", ErrInvalidPerformanceData, empty)
	}
	estimated := payloadKg + empty
	if estimated > maxZFW {
		return ZFW{}, &LimitExceededError{Kind: LimitZFW, Estimated: estimated, Max: maxZFW}
	}
	return ZFW{EmptyWeight: empty, Estimated: estimated, Max: maxZFW}, nil
}

type Weight struct {
	Estimated int64
	Max       int64
}

func TakeoffWeight(perf entity.AircraftPerformance, emptyWeightKg int64, blockFuelKg float64, payloadKg int64) (Weight, error) {
	maxTOW, err := nonNegativeInt(perf.MaxTOW, "max takeoff weight")
	if err != nil {
		return Weight{}, err
	}
	estimated := int64(math.Floor(float64(emptyWeightKg) + blockFuelKg + float64(payloadKg)))
	if estimated > maxTOW {
		return Weight{}, &LimitExceededError{Kind: LimitTOW, Estimated: estimated, Max: maxTOW}
	}
	return Weight{Estimated: estimated, Max: maxTOW}, nil
}

func LandingWeight(perf entity.AircraftPerformance, towKg int64, blockFuelKg, cargoKg float64) (Weight, error) {
	maxLW, err := nonNegativeInt(perf.MaxLW, "max landing weight")
	if err != nil {
		return Weight{}, err
	}
	estimated := int64(math.Floor(float64(towKg) - blockFuelKg + cargoKg))
	if estimated > maxLW {
		return Weight{}, &LimitExceededError{Kind: LimitLW, Estimated: estimated, Max: maxLW}
	}
	return Weight{Estimated: estimated, Max: maxLW}, nil
}

func requirePresent(q entity.Quantity, field string) error {
	if !q.Present() {
		return fmt.Errorf("%w: %s", ErrMissingPerformanceField, field)
	}
	return nil
}

func nonNegativeInt(q entity.Quantity, field string) (int64, error) {
	if err := requirePresent(q, field); err != nil {
		return 0, err
	}
	n, ok := q.Int()
	if !ok || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %v", ErrInvalidPerformanceData, field, q.Raw())
	}
	return n, nil
}

func nonNegativeNumber(q entity.Quantity, field string) (float64, error) {
	if err := requirePresent(q, field); err != nil {
		return 0, err
	}
	f, ok := q.Float()
	if !ok || f < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidPerformanceData, field, q.Raw())
	}
	return f, nil
}
