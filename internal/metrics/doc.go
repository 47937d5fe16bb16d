// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization and exposed by the API router at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)

Recommendation Metrics:
  - recommend_requests_total: Requests by outcome (counter)
    Labels: source_category, target_category, outcome (ok, validation, timeout, error)
  - recommend_duration_seconds: Engine latency (histogram)
    Labels: target_category
  - recommend_candidates_scored_total / recommend_candidates_skipped_total (counters)
    Labels: target_category
  - encoder_fallbacks_total: Preferences encoded as the baseline vector (counter)
    Labels: source_category

Cache Metrics:
  - cache_hits_total, cache_misses_total (counters), cache_entries (gauge)
    Labels: cache_type

Catalog Metrics:
  - catalog_items: Items per category in the active snapshot (gauge)
  - catalog_snapshot_version: Active snapshot version (gauge)
  - catalog_reloads_total: Reload attempts (counter)
    Labels: source, result (success, failure, rejected)
  - catalog_load_duration_seconds: Load duration (histogram)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_state_transitions_total (counter)
    Labels: name, from_state, to_state

# Usage

	metrics.RecordAPIRequest("POST", "/recommend", "200", 3*time.Millisecond)
	metrics.RecordRecommendation("books", "movies", "ok", 2*time.Millisecond)

# Thread Safety

All helpers are safe for concurrent use; Prometheus collectors synchronize internally.
*/
package metrics
