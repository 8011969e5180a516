package provider

import (
	"context"
	"time"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/cache"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
)

type cachedAirportProvider struct {
	provider AirportProvider
	cache    *cache.Cache[entity.AirportLocation]
	ttl      time.Duration
}

// NewCachedAirportProvider remembers successful lookups of p for ttl.
// Failures are never cached.
func NewCachedAirportProvider(p AirportProvider, ttl time.Duration) AirportProvider {
	return &cachedAirportProvider{
		provider: p,
		cache:    cache.NewDeep[entity.AirportLocation](),
		ttl:      ttl,
	}
}

func (c *cachedAirportProvider) Name() string {
	return c.provider.Name()
}

func (c *cachedAirportProvider) Lookup(ctx context.Context, icao string) (entity.AirportLocation, error) {
	key := cache.Key(c.provider.Name(), icao)
	if loc, ok := c.cache.Get(key); ok {
		return loc, nil
	}

	loc, err := c.provider.Lookup(ctx, icao)
	if err != nil {
		return entity.AirportLocation{}, err
	}
	c.cache.Set(key, loc, c.ttl)
	return loc, nil
}
