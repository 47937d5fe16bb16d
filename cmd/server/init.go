// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/crossrec/internal/api"
	"github.com/tomtom215/crossrec/internal/catalog"
	"github.com/tomtom215/crossrec/internal/config"
	"github.com/tomtom215/crossrec/internal/encoder"
	"github.com/tomtom215/crossrec/internal/recommend"
)

// minSweepInterval keeps short cache TTLs from turning the sweep into a busy loop.
const minSweepInterval = 10 * time.Second

// openCatalogSource builds the configured catalog source. The returned close
// function is safe to call more than once.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func openCatalogSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Source, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.CatalogSourceSeed:
		return catalog.SeedSource{}, noop, nil

	case config.CatalogSourceFile:
		src := &catalog.FileSource{Path: cfg.Catalog.Path}
		if cfg.Catalog.SeedFallback {
			src.Fallback = catalog.SeedSource{}
		}
		return src, noop, nil

	case config.CatalogSourceBadger:
		bs, err := catalog.OpenBadger(cfg.Catalog.BadgerPath, logger)
		if err != nil {
			return nil, noop, err
		}
		closed := false
		closeFn := func() {
			if closed {
				return
			}
			closed = true
			if err := bs.Close(); err != nil {
				logger.Error().Err(err).Msg("Error closing catalog store")
			}
		}

		if err := seedBadger(ctx, bs, cfg, logger); err != nil {
			closeFn()
			return nil, noop, err
		}
		return bs, closeFn, nil

	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// seedBadger imports the catalog file, or the built-in seed, into an empty store.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func seedBadger(ctx context.Context, bs *catalog.BadgerSource, cfg *config.Config, logger zerolog.Logger) error {
	empty, err := bs.Empty()
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	var from catalog.Source = catalog.SeedSource{}
	if cfg.Catalog.Path != "" {
		from = &catalog.FileSource{Path: cfg.Catalog.Path}
	}

	doc, err := from.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog store from %s: %w", from.Name(), err)
	}
	if err := bs.Import(ctx, doc); err != nil {
		return fmt.Errorf("seed catalog store: %w", err)
	}
	logger.Info().Str("from", from.Name()).Msg("Catalog store seeded")
	return nil
}

// buildFitFunc returns the featurizer factory used for every snapshot.
func buildFitFunc(cfg *config.Config) catalog.FitFunc {
	encCfg := encoder.Config{
		HashBuckets:   cfg.Encoder.HashBuckets,
		ConceptWeight: cfg.Encoder.ConceptWeight,
		TokenWeight:   cfg.Encoder.TokenWeight,
	}
	return func(corpus []string) catalog.Featurizer {
		return encoder.Fit(encCfg, encoder.DefaultLexicon, corpus)
	}
}

// buildEngineConfig creates the engine configuration from app config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultLimit:   cfg.Recommend.DefaultLimit,
			MaxLimit:       cfg.Recommend.MaxLimit,
			MaxPreferences: cfg.Recommend.MaxPreferences,
			RequestTimeout: cfg.Recommend.RequestTimeout,
			Workers:        cfg.Recommend.Workers,
		},
		Cache: recommend.CacheConfig{
			Enabled:    cfg.Recommend.Cache.Enabled,
			TTL:        cfg.Recommend.Cache.TTL,
			MaxEntries: cfg.Recommend.Cache.MaxEntries,
		},
	}
}

// buildChiMiddlewareConfig maps server settings onto the HTTP middleware.
func buildChiMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		mw.CORSAllowedOrigins = cfg.Server.CORSOrigins
	}
	mw.RateLimitRequests = cfg.Server.RateLimitReqs
	mw.RateLimitWindow = cfg.Server.RateLimitWindow
	mw.RateLimitDisabled = cfg.Server.RateLimitDisabled
	return mw
}

// cacheSweepInterval sweeps at the cache TTL, or not at all without a cache.
func cacheSweepInterval(cfg *config.Config) time.Duration {
	if !cfg.Recommend.Cache.Enabled {
		return 0
	}
	if cfg.Recommend.Cache.TTL < minSweepInterval {
		return minSweepInterval
	}
	return cfg.Recommend.Cache.TTL
}
