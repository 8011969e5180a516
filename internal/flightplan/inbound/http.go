package inbound

import (
	"context"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/usecase"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgrouter"
)

type uc interface {
	Plan(ctx context.Context, in usecase.PlanInput) (*usecase.PlanOutput, error)
	Aircraft(ctx context.Context, code string) (entity.AircraftPerformance, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/flights/calculate", end.Calculate)
	r.GET("/aircraft/{code}", end.Aircraft)
}
