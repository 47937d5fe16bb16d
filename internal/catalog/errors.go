// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"errors"
	"fmt"
)

// ErrNoCategories is returned when a source yields no categories at all.
var ErrNoCategories = errors.New("catalog has no categories")

// LoadError reports a catalog that cannot be served. It is fatal at startup
// and keeps the previous snapshot active during a reload.
type LoadError struct {
	Source   string
	Category Category
	ItemID   string
	Reason   string
	Err      error
}

func (e *LoadError) Error() string {
	msg := "catalog load"
	if e.Source != "" {
		msg += " from " + e.Source
	}
	if e.Category != "" {
		msg += fmt.Sprintf(": category %q", e.Category)
	}
	if e.ItemID != "" {
		msg += fmt.Sprintf(": item %q", e.ItemID)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
