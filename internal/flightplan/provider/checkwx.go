package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/geo"
)

const (
	defaultCheckWXBaseURL = "https://api.checkwx.com"
	checkWXKeyHeader      = "X-API-Key"
	maxErrorBody          = 512
)

type CheckWXOption func(*CheckWXProvider)

func WithCheckWXBaseURL(baseURL string) CheckWXOption {
	return func(c *CheckWXProvider) { c.baseURL = baseURL }
}

func WithCheckWXHTTPClient(hc *http.Client) CheckWXOption {
	return func(c *CheckWXProvider) { c.httpClient = hc }
}

// CheckWXProvider resolves airports through the decoded METAR endpoint of
// the CheckWX API.
type CheckWXProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewCheckWXProvider(apiKey string, opts ...CheckWXOption) (*CheckWXProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("checkwx: %w", ErrMissingAPIKey)
	}
	c := &CheckWXProvider{
		apiKey:     apiKey,
		baseURL:    defaultCheckWXBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *CheckWXProvider) Name() string {
	return "CheckWX"
}

type metarResponse struct {
	Results int `json:"results"`
	Data    []struct {
		ICAO    string `json:"icao"`
		Station struct {
			Name     string `json:"name"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"station"`
	} `json:"data"`
}

func (c *CheckWXProvider) Lookup(ctx context.Context, icao string) (entity.AirportLocation, error) {
	code := normalizeCode(icao)
	if code == "" {
		return entity.AirportLocation{}, fmt.Errorf("%w: icao code cannot be empty", ErrUnknownAirport)
	}

	endpoint := fmt.Sprintf("%s/metar/%s/decoded", c.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.AirportLocation{}, fmt.Errorf("checkwx new request: %w", err)
	}
	req.Header.Set(checkWXKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return entity.AirportLocation{}, ctx.Err()
		}
		return entity.AirportLocation{}, fmt.Errorf("%w: checkwx %s: %v", ErrTemporary, code, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return entity.AirportLocation{}, fmt.Errorf("%w: the airport with icao code %s does not exist", ErrUnknownAirport, code)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return entity.AirportLocation{}, fmt.Errorf("%w: checkwx %s: status %d", ErrTemporary, code, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return entity.AirportLocation{}, fmt.Errorf("error retrieving data for %s: %d - %s", code, resp.StatusCode, string(body))
	}

	var payload metarResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.AirportLocation{}, fmt.Errorf("checkwx decode %s: %w", code, err)
	}
	if len(payload.Data) == 0 {
		return entity.AirportLocation{}, fmt.Errorf("%w: the airport with icao code %s does not exist", ErrUnknownAirport, code)
	}

	station := payload.Data[0]
	coords := station.Station.Geometry.Coordinates
	if len(coords) < 2 {
		return entity.AirportLocation{}, fmt.Errorf("%w: station %s has no coordinates", geo.ErrInvalidCoordinate, code)
	}

	stationCode := station.ICAO
	if stationCode == "" {
		stationCode = code
	}

	// GeoJSON order: longitude first
	return entity.AirportLocation{
		StationCode: stationCode,
		Latitude:    coords[1],
		Longitude:   coords[0],
	}, nil
}
