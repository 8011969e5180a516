package inbound

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/calculator"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/provider"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/usecase"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgerror"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgrouter"
)

type fixedID struct{}

func (fixedID) Generate() string { return "test-id" }

func newTestRouter() *pkgrouter.Router {
	airports := provider.NewStaticAirportProvider([]entity.AirportLocation{
		{StationCode: "ULLI", Latitude: 59.8003, Longitude: 30.2625},
		{StationCode: "UUEE", Latitude: 55.9726, Longitude: 37.4146},
		{StationCode: "XBAD", Latitude: -120, Longitude: 0},
	})
	uc := usecase.New(usecase.Dependency{
		Performance:     provider.NewEmbeddedAircraftTable(),
		Airports:        airports,
		CacheTTL:        time.Minute,
		ProviderTimeout: time.Second,
	})

	r := pkgrouter.NewRouter(fixedID{})
	RegisterHTTPEndpoint(r, uc)
	return r
}

func get(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

func TestCalculateEndpoint(t *testing.T) {
	rec, body := get(t, newTestRouter(), "/flights/calculate?departure=ulli&arrival=UUEE&aircraft=b738")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-id", rec.Header().Get(pkgrouter.HeaderRequestID))

	data := body["data"].(map[string]any)
	assert.Equal(t, "B738", data["aircraft"])
	assert.Equal(t, "ULLI", data["departure"].(map[string]any)["icao"])

	params := data["parameters"].(map[string]any)
	assert.Equal(t, 599.0, params["distance_km"])
	assert.Equal(t, 189.0, params["passengers_max"])
	assert.Equal(t, 19656.0, params["payload_kg"])
	assert.Equal(t, 4914.0, params["cargo_kg"])
	assert.Equal(t, map[string]any{"est": 61069.0, "max": 62732.0}, params["zfw"])

	meta := data["metadata"].(map[string]any)
	assert.Equal(t, "Static", meta["airport_provider"])
	assert.Equal(t, false, meta["cache_hit"])
}

func TestCalculateEndpointErrors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		status  int
		message string
	}{
		{"missing airports", "/flights/calculate?aircraft=B738", http.StatusBadRequest, "departure and arrival are required"},
		{"bad departure", "/flights/calculate?departure=UL&arrival=UUEE&aircraft=B738", http.StatusBadRequest, "invalid departure icao code"},
		{"missing aircraft", "/flights/calculate?departure=ULLI&arrival=UUEE", http.StatusBadRequest, "aircraft is required"},
		{"bad aircraft", "/flights/calculate?departure=ULLI&arrival=UUEE&aircraft=B-738", http.StatusBadRequest, "invalid aircraft type code"},
		{"unknown aircraft", "/flights/calculate?departure=ULLI&arrival=UUEE&aircraft=X123", http.StatusNotFound, "aircraft type not found"},
		{"unknown airport", "/flights/calculate?departure=ZZZZ&arrival=UUEE&aircraft=B738", http.StatusNotFound, "airport not found"},
		{"bad coordinates", "/flights/calculate?departure=XBAD&arrival=UUEE&aircraft=B738", http.StatusUnprocessableEntity, "invalid airport coordinates"},
	}

	r := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get(t, r, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}

func TestAircraftEndpoint(t *testing.T) {
	r := newTestRouter()

	rec, body := get(t, r, "/aircraft/a320")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "A320", data["type_code"])
	assert.Equal(t, 180.0, data["max_passengers"])

	rec, _ = get(t, r, "/aircraft/q400")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code pkgerror.Code
	}{
		{"limit", &calculator.LimitExceededError{Kind: calculator.LimitTOW, Estimated: 2, Max: 1}, pkgerror.CodeUnprocessable},
		{"unknown aircraft", provider.ErrUnknownAircraftType, pkgerror.CodeNotFound},
		{"unknown airport", fmt.Errorf("lookup: %w", provider.ErrUnknownAirport), pkgerror.CodeNotFound},
		{"coordinate", calculator.ErrInvalidCoordinate, pkgerror.CodeUnprocessable},
		{"missing field", calculator.ErrMissingPerformanceField, pkgerror.CodeUnprocessable},
		{"invalid data", calculator.ErrInvalidPerformanceData, pkgerror.CodeUnprocessable},
		{"division", calculator.ErrDivisionByZero, pkgerror.CodeUnprocessable},
		{"temporary", provider.ErrTemporary, pkgerror.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err)
			b, ok := pkgerror.AsBusiness(mapped)
			require.True(t, ok)
			assert.Equal(t, tt.code, b.Code())
			assert.ErrorIs(t, mapped, tt.err)
		})
	}

	plain := errors.New("boom")
	assert.Same(t, plain, mapError(plain))
}

func TestMapErrorLimitMessage(t *testing.T) {
	mapped := mapError(&calculator.LimitExceededError{Kind: calculator.LimitLW, Estimated: 65982, Max: 65317})
	b, ok := pkgerror.AsBusiness(mapped)
	require.True(t, ok)
	assert.Equal(t, "estimated LW 65982 kg exceeds maximum allowable LW 65317 kg", b.Message())
}
