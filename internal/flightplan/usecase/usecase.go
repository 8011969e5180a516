package usecase

import (
	"time"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/cache"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/provider"
)

type Dependency struct {
	Performance        provider.PerformanceProvider
	Airports           provider.AirportProvider
	Cache              *cache.Cache[*PlanOutput]
	CacheTTL           time.Duration
	ProviderTimeout    time.Duration
	MaxProviderRetries int
}

type Usecase struct {
	performance        provider.PerformanceProvider
	airports           provider.AirportProvider
	cache              *cache.Cache[*PlanOutput]
	cacheTTL           time.Duration
	providerTimeout    time.Duration
	maxProviderRetries int
	retryBackoff       time.Duration
}

func New(dep Dependency) *Usecase {
	c := dep.Cache
	if c == nil {
		c = cache.NewDeep[*PlanOutput]()
	}
	timeout := dep.ProviderTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Usecase{
		performance:        dep.Performance,
		airports:           dep.Airports,
		cache:              c,
		cacheTTL:           dep.CacheTTL,
		providerTimeout:    timeout,
		maxProviderRetries: dep.MaxProviderRetries,
		retryBackoff:       80 * time.Millisecond,
	}
}
