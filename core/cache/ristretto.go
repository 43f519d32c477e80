package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RistrettoCache is the default Cache implementation.
type RistrettoCache struct {
	cache  *ristretto.Cache
	logger *zap.Logger
}

// RistrettoConfig holds sizing for the underlying cache. Costs count items,
// not bytes: the cached values here are a few words each.
type RistrettoConfig struct {
	NumCounters int64 // keys tracked for frequency, ~10x MaxItems
	MaxItems    int64
	BufferItems int64
	Logger      *zap.Logger
}

// DefaultRistrettoConfig sizes the cache for a few thousand mint/market
// entries, which covers every market a single client realistically touches.
func DefaultRistrettoConfig(logger *zap.Logger) *RistrettoConfig {
	return &RistrettoConfig{
		NumCounters: 40_000,
		MaxItems:    4_000,
		BufferItems: 64,
		Logger:      logger,
	}
}

// NewRistrettoCache creates a new ristretto-backed cache.
func NewRistrettoCache(cfg *RistrettoConfig) (Cache, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxItems,
		BufferItems: cfg.BufferItems,
		Metrics:     true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ristretto cache")
	}

	return &RistrettoCache{
		cache:  cache,
		logger: cfg.Logger,
	}, nil
}

// Get retrieves a value from the cache.
func (r *RistrettoCache) Get(key string) (interface{}, bool) {
	value, found := r.cache.Get(key)
	if found {
		LookupHitsTotal.Inc()
		r.logger.Debug("cache-hit", zap.String("key", key))
	} else {
		LookupMissesTotal.Inc()
		r.logger.Debug("cache-miss", zap.String("key", key))
	}
	return value, found
}

// Set stores a value in the cache with a TTL.
func (r *RistrettoCache) Set(key string, value interface{}, ttl time.Duration) bool {
	success := r.cache.SetWithTTL(key, value, 1, ttl)
	if success {
		LookupSetsTotal.Inc()
		r.logger.Debug("cache-set",
			zap.String("key", key),
			zap.Duration("ttl", ttl))
	}
	return success
}

// Delete removes a value from the cache.
func (r *RistrettoCache) Delete(key string) {
	r.cache.Del(key)
}

// Close closes the cache and releases resources.
func (r *RistrettoCache) Close() {
	r.cache.Close()
}
