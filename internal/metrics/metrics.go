// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the recommendation service:
// - API endpoint latency and throughput
// - Recommendation outcomes and candidate scoring
// - Preference encoder fallbacks
// - Result cache efficiency
// - Catalog snapshots and reloads
// - Circuit breaker state

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"source_category", "target_category", "outcome"}, // outcome: ok, validation, timeout, canceled, error
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent producing a recommendation result",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"target_category"},
	)

	CandidatesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_candidates_scored_total",
			Help: "Total number of catalog items scored against preference vectors",
		},
		[]string{"target_category"},
	)

	CandidatesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_candidates_skipped_total",
			Help: "Total number of catalog items skipped because their vector could not be scored",
		},
		[]string{"target_category"},
	)

	EncoderFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encoder_fallbacks_total",
			Help: "Total number of preferences encoded as the baseline vector",
		},
		[]string{"source_category"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items per category in the active catalog snapshot",
		},
		[]string{"category"},
	)

	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_version",
			Help: "Version of the active catalog snapshot",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reload attempts by result",
		},
		[]string{"source", "result"}, // result: success, failure, rejected
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads including vector computation",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome and latency of one recommendation request.
func RecordRecommendation(source, target, outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(source, target, outcome).Inc()
	RecommendationDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// RecordCandidates records how many candidates were scored and skipped for a target category.
func RecordCandidates(target string, scored, skipped int) {
	if scored > 0 {
		CandidatesScored.WithLabelValues(target).Add(float64(scored))
	}
	if skipped > 0 {
		CandidatesSkipped.WithLabelValues(target).Add(float64(skipped))
	}
}

// RecordEncoderFallbacks records preferences that degraded to the baseline vector.
func RecordEncoderFallbacks(source string, n int) {
	if n > 0 {
		EncoderFallbacks.WithLabelValues(source).Add(float64(n))
	}
}

// RecordCacheLookup records a cache hit or miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordCatalogSnapshot publishes the shape of a freshly activated catalog snapshot.
func RecordCatalogSnapshot(version uint64, itemsPerCategory map[string]int) {
	CatalogVersion.Set(float64(version))
	for category, n := range itemsPerCategory {
		CatalogItems.WithLabelValues(category).Set(float64(n))
	}
}

// RecordCatalogReload records a catalog reload attempt.
func RecordCatalogReload(source, result string, duration time.Duration) {
	CatalogReloads.WithLabelValues(source, result).Inc()
	if result != "rejected" {
		CatalogLoadDuration.Observe(duration.Seconds())
	}
}
