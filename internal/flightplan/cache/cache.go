// Package cache is a small TTL cache that hands out copies of its values,
// so callers can never mutate what another request will read.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/brunoga/deep"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
	now     func() time.Time
}

// New returns a cache that copies values with clone. A nil clone stores
// and returns values as they are.
func New[T any](clone func(T) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		now:     time.Now,
	}
}

// NewDeep returns a cache that deep copies every value on the way in and
// on the way out.
func NewDeep[T any]() *Cache[T] {
	return New(func(v T) T { return deep.MustCopy(v) })
}

// Key joins parts into a case-insensitive cache key.
func Key(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToUpper(strings.TrimSpace(p))
	}
	return strings.Join(normalized, "|")
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	if c.now().After(e.expiry) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		var zero T
		return zero, false
	}
	return c.cloneValue(e.value), true
}

func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: c.now().Add(ttl)}
	c.mu.Unlock()
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
