package provider

import (
	"context"
	"sync"
	"time"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/entity"
)

type rateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

// Wait blocks until interval has passed since the previous call returned.
func (r *rateLimiter) Wait(ctx context.Context) error {
	if r.interval <= 0 {
		return nil
	}
	for {
		r.mu.Lock()
		elapsed := time.Since(r.last)
		if r.last.IsZero() || elapsed >= r.interval {
			r.last = time.Now()
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		timer := time.NewTimer(r.interval - elapsed)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

type rateLimitedAirportProvider struct {
	provider AirportProvider
	limiter  *rateLimiter
}

// NewRateLimitedAirportProvider spaces calls to p at least interval apart.
func NewRateLimitedAirportProvider(p AirportProvider, interval time.Duration) AirportProvider {
	return &rateLimitedAirportProvider{
		provider: p,
		limiter:  newRateLimiter(interval),
	}
}

func (r *rateLimitedAirportProvider) Name() string {
	return r.provider.Name()
}

func (r *rateLimitedAirportProvider) Lookup(ctx context.Context, icao string) (entity.AirportLocation, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return entity.AirportLocation{}, err
	}
	return r.provider.Lookup(ctx, icao)
}
