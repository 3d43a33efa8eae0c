package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacefinder_upstream_requests_total",
			Help: "Total number of nearby-spaces requests sent upstream",
		},
		[]string{"outcome"},
	)

	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spacefinder_upstream_duration_seconds",
			Help:    "Duration of upstream nearby-spaces requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacefinder_cache_lookups_total",
			Help: "Nearby cache lookups by result",
		},
		[]string{"result"},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spacefinder_search_results",
			Help:    "Number of listings returned per search after filtering",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacefinder_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)

// Outcome and cache result label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
