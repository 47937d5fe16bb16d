// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/crossrec/internal/logging"
	"github.com/tomtom215/crossrec/internal/recommend"
)

// APIResponse is the error envelope. Successful responses are written bare
// so existing clients keep their body shape.
type APIResponse struct {
	// Success is always false in an error envelope.
	Success bool `json:"success"`

	// Error contains error details.
	Error *APIError `json:"error"`
}

// APIError represents an error response.
type APIError struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains additional error details (optional)
	Details interface{} `json:"details,omitempty"`

	// RequestID is the request ID for tracing
	RequestID string `json:"request_id,omitempty"`
}

// Error codes for API responses
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"
	ErrCodeCanceled         = "REQUEST_CANCELED"
	ErrCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = 1

// statusClientClosedRequest is the non-standard 499 status used when the
// client disconnected before a result was ready.
const statusClientClosedRequest = 499

// writeJSON writes v as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes an error envelope carrying the request ID.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondEngineError maps a recommendation failure onto a status and code.
// Validation failures are the client's to fix; timeouts and a missing catalog
// are worth retrying. A client disconnect is logged at debug level and never
// reported as a server error.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *recommend.ValidationError
	var terr *recommend.TimeoutError

	switch {
	case errors.As(err, &verr):
		var details interface{}
		if verr.Field != "" {
			details = map[string]string{"field": verr.Field}
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, verr.Error(), details)

	case errors.As(err, &terr):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeRequestTimeout, "Recommendation timed out, retry later", nil)

	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Err(err).Msg("client closed request")
		respondError(w, r, statusClientClosedRequest, ErrCodeCanceled, "Request canceled", nil)

	case errors.Is(err, recommend.ErrNoCatalog):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, "Catalog is not loaded", nil)

	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", nil)
	}
}
