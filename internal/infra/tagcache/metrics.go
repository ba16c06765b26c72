package tagcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_lookups_total",
			Help: "Cache lookups by tag and result (hit or miss)",
		},
		[]string{"tag", "result"},
	)

	cacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_invalidations_total",
			Help: "Tag invalidations triggered by successful mutations",
		},
		[]string{"tag"},
	)

	cacheStaleWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_stale_writes_total",
			Help: "Writes dropped because the tag was invalidated while the response was in flight",
		},
		[]string{"tag"},
	)
)
