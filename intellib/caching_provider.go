package intellib

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
)

type cachingProvider struct {
	Provider

	cache    *ristretto.Cache
	cacheKey string
	ttl      time.Duration
}

func (c cachingProvider) Lookup(ctx context.Context) (Observation, error) {
	value, ok := c.cache.Get(c.cacheKey)
	if ok {
		return value.(Observation), nil
	}

	observation, err := c.Provider.Lookup(ctx)
	if err != nil {
		return Observation{}, err
	}

	c.cache.SetWithTTL(c.cacheKey, observation, 1, c.ttl)

	return observation, nil
}

// NewLookupCache builds a cache suitable for NewCachingProvider,
// sized in number of observations.
func NewLookupCache(itemsCount uint) *ristretto.Cache {
	cacheConfig := &ristretto.Config{
		MaxCost:     int64(itemsCount),
		NumCounters: 10 * int64(itemsCount),
		Metrics:     false,
		BufferItems: 64,
	}

	cache, err := ristretto.NewCache(cacheConfig)
	if err != nil {
		panic(err)
	}

	return cache
}

// NewCachingProvider wraps a provider with a TTL cache. It only makes
// sense for providers whose answer is a function of the cache key (for
// example a geolocation lookup of a fixed IP): lookups which depend on
// the calling vantage must not be cached.
func NewCachingProvider(provider Provider, cache *ristretto.Cache, cacheKey string, ttl time.Duration) Provider {
	return cachingProvider{
		Provider: provider,
		cache:    cache,
		cacheKey: cacheKey + "/" + provider.Name(),
		ttl:      ttl,
	}
}
