package flightplan

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/cache"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/inbound"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/provider"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/usecase"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgconfig"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	uc, err := NewUsecase(dep.Config)
	if err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// NewUsecase builds the providers described by cfg and the usecase on top
// of them. The CLI uses it directly.
func NewUsecase(cfg pkgconfig.Config) (*usecase.Usecase, error) {
	performance := provider.NewEmbeddedAircraftTable()
	if dir := cfg.GetString("modules.flight-plan.aircraft.data_dir"); dir != "" {
		performance = provider.NewAircraftTable(os.DirFS(dir))
	}

	airports, err := newAirportProvider(cfg)
	if err != nil {
		return nil, err
	}

	rateLimit := 100 * time.Millisecond
	if rateLimitMs := cfg.GetInt("modules.flight-plan.provider.rate_limit_ms"); rateLimitMs > 0 {
		rateLimit = time.Duration(rateLimitMs) * time.Millisecond
	}
	airports = provider.NewRateLimitedAirportProvider(airports, rateLimit)

	cacheTTL := 10 * time.Minute
	if ttlSeconds := cfg.GetInt("modules.flight-plan.cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}
	airports = provider.NewCachedAirportProvider(airports, cacheTTL)

	providerTimeout := 5 * time.Second
	if timeoutMs := cfg.GetInt("modules.flight-plan.provider.timeout_ms"); timeoutMs > 0 {
		providerTimeout = time.Duration(timeoutMs) * time.Millisecond
	}

	maxRetries := 2
	if cfg.GetString("modules.flight-plan.provider.max_retries") != "" {
		maxRetries = cfg.GetInt("modules.flight-plan.provider.max_retries")
	}

	slog.Info("flight plan module configured",
		"airport_provider", airports.Name(),
		"rate_limit", rateLimit.String(),
		"cache_ttl", cacheTTL.String(),
		"max_retries", maxRetries,
	)

	return usecase.New(usecase.Dependency{
		Performance:        performance,
		Airports:           airports,
		Cache:              cache.NewDeep[*usecase.PlanOutput](),
		CacheTTL:           cacheTTL,
		ProviderTimeout:    providerTimeout,
		MaxProviderRetries: maxRetries,
	}), nil
}

func newAirportProvider(cfg pkgconfig.Config) (provider.AirportProvider, error) {
	if path := cfg.GetString("modules.flight-plan.airports.file"); path != "" {
		p, err := provider.NewStaticAirportProviderFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("airport provider: %w", err)
		}
		return p, nil
	}

	opts := []provider.CheckWXOption{}
	if baseURL := cfg.GetString("modules.flight-plan.checkwx.base_url"); baseURL != "" {
		opts = append(opts, provider.WithCheckWXBaseURL(baseURL))
	}
	p, err := provider.NewCheckWXProvider(cfg.GetString("modules.flight-plan.checkwx.api_key"), opts...)
	if err != nil {
		return nil, fmt.Errorf("airport provider: %w", err)
	}
	return p, nil
}
