// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package api provides the HTTP surface of the recommendation service using the
Chi router.

# Endpoints

  - GET  /            service banner
  - GET  /health      liveness with catalog version, categories and engine stats
  - GET  /categories  category names, display names and item counts
  - POST /recommend   ranked cross-category recommendations
  - GET  /metrics     Prometheus exposition
  - GET  /swagger/*   Swagger UI and /swagger/doc.json

Successful responses are plain JSON objects. Failures use an envelope:

	{"success": false, "error": {"code": "VALIDATION_ERROR", "message": "...", "request_id": "..."}}

# Status Codes

  - 400 BAD_REQUEST: malformed JSON
  - 400 VALIDATION_ERROR: missing fields, blank preferences, unknown category
  - 429 TOO_MANY_REQUESTS: per-IP limit on POST /recommend
  - 499 REQUEST_CANCELED: the client went away before the result was ready
  - 503 REQUEST_TIMEOUT: the request ran out of time; Retry-After is set
  - 500 INTERNAL_ERROR: anything else

# Middleware

RealIP, request ID, panic recovery, Prometheus request metrics, access
logging, CORS (go-chi/cors) and gzip compression apply to every route.
POST /recommend is additionally rate limited with go-chi/httprate.
*/
package api
