package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupHitsTotal tracks cache hits across all cached chain lookups.
	LookupHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_cache_hits_total",
		Help: "Total number of cache hits",
	})

	// LookupMissesTotal tracks cache misses.
	LookupMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_cache_misses_total",
		Help: "Total number of cache misses",
	})

	// LookupSetsTotal tracks cache writes.
	LookupSetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_cache_sets_total",
		Help: "Total number of cache sets",
	})
)
