// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID request tracking, echoed in X-Request-ID
  - PrometheusMetrics: request count, latency and in-flight gauge by route
  - AccessLog: structured zerolog request lines with slow-request warnings

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger, time.Second))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
