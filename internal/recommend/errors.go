// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package recommend

import (
	"errors"
	"fmt"
)

// ErrNoCatalog is returned when the engine has no catalog snapshot to serve.
var ErrNoCatalog = errors.New("no catalog loaded")

// ValidationError rejects a request before any scoring work starts.
// Retrying the same request cannot succeed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Message
	}
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// TimeoutError reports a request that ran out of time. Partial results are
// discarded; the request may be retried.
type TimeoutError struct {
	// Stage is where the deadline was noticed: "encode" or "score".
	Stage string
	Err   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("recommendation timed out during %s: %v", e.Stage, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsTimeout reports whether err is a *TimeoutError.
func IsTimeout(err error) bool {
	var t *TimeoutError
	return errors.As(err, &t)
}
