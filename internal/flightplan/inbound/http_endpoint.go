package inbound

import (
	"context"
	"net/http"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/report"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Calculate(ctx context.Context, r *http.Request) (any, error) {
	input, err := parsePlanInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Plan(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return CalculateResponse{
		Record: report.NewRecord(output.Plan),
		Metadata: MetadataResponse{
			AirportProvider: output.Metadata.AirportProvider,
			CalculationMs:   output.Metadata.CalculationMs,
			CacheHit:        output.Metadata.CacheHit,
		},
	}, nil
}

func (h *HTTPEndpoint) Aircraft(ctx context.Context, r *http.Request) (any, error) {
	code, err := parseAircraftCode(pkgrouter.Param(r, "code"))
	if err != nil {
		return nil, err
	}

	perf, err := h.uc.Aircraft(ctx, code)
	if err != nil {
		return nil, mapError(err)
	}

	return AircraftResponse{
		TypeCode:      perf.TypeCode,
		FuelPer100km:  perf.FuelPer100km,
		MaxPassengers: perf.MaxPassengers,
		EmptyWeight:   perf.EmptyWeight,
		MaxZFW:        perf.MaxZFW,
		MaxTOW:        perf.MaxTOW,
		MaxLW:         perf.MaxLW,
	}, nil
}
