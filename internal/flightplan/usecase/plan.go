package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/cache"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/calculator"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/provider"
)

type PlanInput struct {
	Departure string
	Arrival   string
	Aircraft  string
}

type PlanOutput struct {
	Plan     entity.FlightPlan
	Metadata PlanMetadata
}

type PlanMetadata struct {
	AirportProvider string
	CalculationMs   int64
	CacheHit        bool
}

// Plan resolves the aircraft and both airports and runs the calculator.
// Airport lookups go through the retrying lookup below.
func (u *Usecase) Plan(ctx context.Context, in PlanInput) (*PlanOutput, error) {
	start := time.Now()
	cacheKey := cache.Key(in.Aircraft, in.Departure, in.Arrival)
	if cached, ok := u.cache.Get(cacheKey); ok {
		cached.Metadata.CacheHit = true
		cached.Metadata.CalculationMs = time.Since(start).Milliseconds()
		return cached, nil
	}

	plan, err := calculator.ComputePlan(ctx, in.Departure, in.Arrival, in.Aircraft, u.performance, retryingAirports{u})
	if err != nil {
		slog.WarnContext(ctx, "flight plan rejected",
			"aircraft", in.Aircraft, "departure", in.Departure, "arrival", in.Arrival, "error", err)
		return nil, err
	}
	calc := plan.Calculation

	output := &PlanOutput{
		Plan: plan,
		Metadata: PlanMetadata{
			AirportProvider: u.airports.Name(),
			CalculationMs:   time.Since(start).Milliseconds(),
		},
	}

	slog.InfoContext(ctx, "flight calculated",
		"aircraft", plan.Aircraft,
		"departure", plan.Departure.StationCode,
		"arrival", plan.Arrival.StationCode,
		"distance_km", int64(calc.DistanceKm),
		"block_fuel_kg", int64(calc.BlockFuelKg),
	)

	u.cache.Set(cacheKey, output, u.cacheTTL)

	return output, nil
}

// Aircraft returns the raw performance limits for a type code.
func (u *Usecase) Aircraft(ctx context.Context, code string) (entity.AircraftPerformance, error) {
	perf, err := u.performance.Lookup(ctx, code)
	if err != nil {
		return entity.AircraftPerformance{}, fmt.Errorf("lookup aircraft %q: %w", code, err)
	}
	return perf, nil
}

type retryingAirports struct{ u *Usecase }

func (r retryingAirports) Lookup(ctx context.Context, icao string) (entity.AirportLocation, error) {
	return r.u.lookupAirport(ctx, icao)
}

func (u *Usecase) lookupAirport(ctx context.Context, icao string) (entity.AirportLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, u.providerTimeout)
	defer cancel()

	backoff := u.retryBackoff
	for attempt := 0; ; attempt++ {
		loc, err := u.airports.Lookup(ctx, icao)
		if err == nil {
			return loc, nil
		}
		if !errors.Is(err, provider.ErrTemporary) {
			return entity.AirportLocation{}, err
		}
		if attempt >= u.maxProviderRetries {
			return entity.AirportLocation{}, err
		}
		slog.WarnContext(ctx, "airport lookup failed, retrying",
			"provider", u.airports.Name(), "icao", icao, "attempt", attempt+1, "error", err)
		select {
		case <-ctx.Done():
			return entity.AirportLocation{}, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}
}
