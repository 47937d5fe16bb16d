// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/crossrec/internal/metrics"
)

// ReloaderConfig tunes the circuit breaker guarding reloads.
type ReloaderConfig struct {
	// MaxFailures is the number of consecutive failed loads that opens the breaker.
	MaxFailures uint32

	// OpenTimeout is how long the breaker stays open before a trial reload.
	OpenTimeout time.Duration
}

// DefaultReloaderConfig returns the reload breaker defaults.
func DefaultReloaderConfig() ReloaderConfig {
	return ReloaderConfig{
		MaxFailures: 3,
		OpenTimeout: 5 * time.Minute,
	}
}

// Reloader rebuilds the catalog from its source and swaps it into a Store.
// A failed reload leaves the active snapshot untouched.
type Reloader struct {
	store  *Store
	source Source
	fit    FitFunc
	cb     *gobreaker.CircuitBreaker[*Snapshot]
	logger zerolog.Logger
}

// NewReloader creates a reloader for store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewReloader(store *Store, source Source, fit FitFunc, cfg ReloaderConfig, logger zerolog.Logger) *Reloader {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = DefaultReloaderConfig().MaxFailures
	}
	logger = logger.With().Str("component", "catalog-reloader").Str("source", source.Name()).Logger()

	cbName := "catalog-reload"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("reload circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Reloader{
		store:  store,
		source: source,
		fit:    fit,
		cb:     cb,
		logger: logger,
	}
}

// Reload loads a fresh snapshot and activates it. It reports whether the
// active snapshot changed; an identical catalog keeps the current snapshot
// so cached results stay valid.
func (r *Reloader) Reload(ctx context.Context) (bool, error) {
	start := time.Now()
	snap, err := r.cb.Execute(func() (*Snapshot, error) {
		return Load(ctx, r.source, r.fit)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordCatalogReload(r.source.Name(), "rejected", time.Since(start))
			r.logger.Debug().Err(err).Msg("catalog reload skipped")
			return false, err
		}
		metrics.RecordCatalogReload(r.source.Name(), "failure", time.Since(start))
		r.logger.Error().Err(err).Msg("catalog reload failed, keeping current snapshot")
		return false, err
	}
	metrics.RecordCatalogReload(r.source.Name(), "success", time.Since(start))

	current := r.store.Current()
	if current != nil && current.Digest() == snap.Digest() {
		r.logger.Debug().Uint64("version", current.Version()).Msg("catalog unchanged")
		return false, nil
	}

	r.store.Swap(snap)
	r.logger.Info().
		Uint64("version", snap.Version()).
		Int("items", snap.Len()).
		Dur("duration", time.Since(start)).
		Msg("catalog snapshot activated")
	return true, nil
}

// State returns the breaker state.
func (r *Reloader) State() gobreaker.State {
	return r.cb.State()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
