// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CatalogReloader rebuilds the active catalog. *catalog.Reloader implements it.
type CatalogReloader interface {
	// Reload reports whether the active snapshot changed.
	Reload(ctx context.Context) (bool, error)
}

// CacheSweeper drops expired cached results. *recommend.Engine implements it.
type CacheSweeper interface {
	SweepCache() int
}

// CatalogServiceConfig holds the schedule of the catalog service.
type CatalogServiceConfig struct {
	// ReloadInterval is how often the catalog source is re-read.
	// Zero or negative disables reloading.
	ReloadInterval time.Duration

	// ReloadTimeout bounds a single reload.
	// Default: 1m.
	ReloadTimeout time.Duration

	// SweepInterval is how often expired cache entries are removed.
	// Zero or negative disables sweeping.
	SweepInterval time.Duration
}

// CatalogService keeps the catalog and the result cache fresh. It never
// fails on a bad reload: the reloader keeps the last good snapshot and its
// circuit breaker spaces out retries.
type CatalogService struct {
	reloader CatalogReloader
	sweeper  CacheSweeper
	config   CatalogServiceConfig
	logger   zerolog.Logger
	name     string
}

// NewCatalogService creates the service. sweeper may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(reloader CatalogReloader, sweeper CacheSweeper, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.ReloadTimeout <= 0 {
		cfg.ReloadTimeout = time.Minute
	}
	return &CatalogService{
		reloader: reloader,
		sweeper:  sweeper,
		config:   cfg,
		logger:   logger.With().Str("service", "catalog").Logger(),
		name:     "catalog-service",
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	reloadC, stopReload := tickerChan(s.config.ReloadInterval)
	defer stopReload()

	var sweepC <-chan time.Time
	if s.sweeper != nil {
		var stopSweep func()
		sweepC, stopSweep = tickerChan(s.config.SweepInterval)
		defer stopSweep()
	}

	s.logger.Info().
		Dur("reload_interval", s.config.ReloadInterval).
		Dur("sweep_interval", s.config.SweepInterval).
		Msg("catalog service running")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-reloadC:
			s.reload(ctx)

		case <-sweepC:
			if n := s.sweeper.SweepCache(); n > 0 {
				s.logger.Debug().Int("removed", n).Msg("expired cache entries removed")
			}
		}
	}
}

func (s *CatalogService) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.ReloadTimeout)
	defer cancel()

	changed, err := s.reloader.Reload(reloadCtx)
	if err != nil {
		// The reloader has already logged and recorded the failure.
		return
	}
	if changed {
		s.logger.Info().Msg("catalog reloaded")
	}
}

// tickerChan returns a ticker channel, or a nil channel that never fires
// when d is not positive.
func tickerChan(d time.Duration) (<-chan time.Time, func()) {
	if d <= 0 {
		return nil, func() {}
	}
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// String implements fmt.Stringer.
func (s *CatalogService) String() string {
	return s.name
}
