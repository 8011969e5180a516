package inbound

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/calculator"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/provider"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/usecase"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgerror"
)

var (
	icaoAirportPattern  = regexp.MustCompile(`^[A-Z0-9]{4}$`)
	icaoAircraftPattern = regexp.MustCompile(`^[A-Z0-9]{2,4}$`)
)

func parsePlanInput(r *http.Request) (usecase.PlanInput, error) {
	q := r.URL.Query()

	departure := strings.ToUpper(strings.TrimSpace(firstNotEmpty(q.Get("departure"), q.Get("dep"))))
	arrival := strings.ToUpper(strings.TrimSpace(firstNotEmpty(q.Get("arrival"), q.Get("arr"))))
	if departure == "" || arrival == "" {
		return usecase.PlanInput{}, pkgerror.NewBusiness("departure and arrival are required", pkgerror.CodeInvalidInput)
	}
	if !icaoAirportPattern.MatchString(departure) {
		return usecase.PlanInput{}, pkgerror.NewBusiness("invalid departure icao code", pkgerror.CodeInvalidInput)
	}
	if !icaoAirportPattern.MatchString(arrival) {
		return usecase.PlanInput{}, pkgerror.NewBusiness("invalid arrival icao code", pkgerror.CodeInvalidInput)
	}

	aircraft, err := parseAircraftCode(q.Get("aircraft"))
	if err != nil {
		return usecase.PlanInput{}, err
	}

	return usecase.PlanInput{
		Departure: departure,
		Arrival:   arrival,
		Aircraft:  aircraft,
	}, nil
}

func parseAircraftCode(value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if code == "" {
		return "", pkgerror.NewBusiness("aircraft is required", pkgerror.CodeInvalidInput)
	}
	if !icaoAircraftPattern.MatchString(code) {
		return "", pkgerror.NewBusiness("invalid aircraft type code", pkgerror.CodeInvalidInput)
	}
	return code, nil
}

func mapError(err error) error {
	var limitErr *calculator.LimitExceededError
	switch {
	case errors.As(err, &limitErr):
		return pkgerror.WrapBusiness(err, limitErr.Error(), pkgerror.CodeUnprocessable)
	case errors.Is(err, provider.ErrUnknownAircraftType):
		return pkgerror.WrapBusiness(err, "aircraft type not found", pkgerror.CodeNotFound)
	case errors.Is(err, provider.ErrUnknownAirport):
		return pkgerror.WrapBusiness(err, "airport not found", pkgerror.CodeNotFound)
	case errors.Is(err, calculator.ErrInvalidCoordinate):
		return pkgerror.WrapBusiness(err, "invalid airport coordinates", pkgerror.CodeUnprocessable)
	case errors.Is(err, calculator.ErrMissingPerformanceField):
		return pkgerror.WrapBusiness(err, "aircraft performance data is incomplete", pkgerror.CodeUnprocessable)
	case errors.Is(err, calculator.ErrInvalidPerformanceData):
		return pkgerror.WrapBusiness(err, "aircraft performance data is invalid", pkgerror.CodeUnprocessable)
	case errors.Is(err, calculator.ErrDivisionByZero):
		return pkgerror.WrapBusiness(err, "distance normalization failed", pkgerror.CodeUnprocessable)
	case errors.Is(err, provider.ErrTemporary):
		return pkgerror.WrapBusiness(err, "airport data provider unavailable", pkgerror.CodeUnavailable)
	default:
		return err
	}
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
