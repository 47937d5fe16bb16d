// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tomtom215/crossrec/internal/metrics"
)

// Store holds the active snapshot. Readers call Current once per request and
// keep using that snapshot; Swap replaces it atomically.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store serving initial, which must not be nil.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.Swap(initial)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap activates next and returns the snapshot it replaced.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	prev := s.current.Swap(next)
	metrics.RecordCatalogSnapshot(next.Version(), next.counts())
	return prev
}

// Load fetches a document from src, fits a featurizer on the full item corpus
// and builds a snapshot. Any failure is a *LoadError.
func Load(ctx context.Context, src Source, fit FitFunc) (*Snapshot, error) {
	doc, err := src.Fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Reason: "fetch", Err: err}
	}
	if doc == nil || len(doc.Categories) == 0 {
		return nil, &LoadError{Source: src.Name(), Err: ErrNoCategories}
	}

	f := fit(doc.corpus())
	if f == nil {
		return nil, &LoadError{Source: src.Name(), Err: fmt.Errorf("fit returned no featurizer")}
	}
	return New(src.Name(), doc, f)
}
