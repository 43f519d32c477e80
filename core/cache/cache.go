// Package cache provides a small TTL cache used by the client for chain
// lookups that never change once observed (mint decimals, settled markets).
package cache

import "time"

// Cache is the interface the client consumes. A nil Cache disables caching.
type Cache interface {
	// Get retrieves a value. Returns (value, true) if present.
	Get(key string) (interface{}, bool)

	// Set stores a value with a TTL. A zero TTL stores without expiry.
	Set(key string, value interface{}, ttl time.Duration) bool

	// Delete removes a value.
	Delete(key string)

	// Close releases the cache's resources.
	Close()
}
