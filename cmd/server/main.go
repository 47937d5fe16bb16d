// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package main is the entry point for the crossrec recommendation server.
//
// Crossrec recommends items of one content category (books, movies, songs,
// games) from free-text preferences expressed about another. Preferences and
// catalog items share one feature space, so ranking is a nearest-neighbour
// search by cosine similarity.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, then environment (Koanf v2)
//  2. Catalog: built-in seed, a JSON file or directory, or a BadgerDB store
//  3. Engine: ranking, limits and the result cache
//  4. Supervisor tree: catalog reload service and the HTTP server
//
// A catalog that fails to load at startup is fatal. Later reload failures keep
// the last good snapshot.
//
// # Example Usage
//
//	./crossrec
//	CATALOG_SOURCE=file CATALOG_PATH=./catalog.json ./crossrec
//	CATALOG_SOURCE=badger CATALOG_BADGER_PATH=/var/lib/crossrec ./crossrec
//
// # API Documentation
//
// Swagger UI is served at /swagger/index.html and the OpenAPI description at
// /swagger/doc.json.
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree; the HTTP server drains
// in-flight requests for up to server.shutdown_timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/crossrec/docs"
	"github.com/tomtom215/crossrec/internal/api"
	"github.com/tomtom215/crossrec/internal/catalog"
	"github.com/tomtom215/crossrec/internal/config"
	"github.com/tomtom215/crossrec/internal/logging"
	"github.com/tomtom215/crossrec/internal/metrics"
	"github.com/tomtom215/crossrec/internal/recommend"
	"github.com/tomtom215/crossrec/internal/supervisor"
	"github.com/tomtom215/crossrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logger.Info().
		Str("version", version).
		Str("catalog_source", cfg.Catalog.Source).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting crossrec")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	docs.SwaggerInfo.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, closeSource, err := openCatalogSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open catalog source")
	}
	defer closeSource()

	fit := buildFitFunc(cfg)
	snap, err := catalog.Load(ctx, src, fit)
	if err != nil {
		closeSource()
		logger.Fatal().Err(err).Msg("Failed to load catalog")
	}
	store := catalog.NewStore(snap)
	logger.Info().
		Str("source", snap.Source()).
		Uint64("version", snap.Version()).
		Int("items", snap.Len()).
		Int("dimension", snap.Dimension()).
		Msg("Catalog loaded")

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), store, nil, logger)
	if err != nil {
		closeSource()
		logger.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		closeSource()
		logger.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	reloader := catalog.NewReloader(store, src, fit, catalog.ReloaderConfig{
		MaxFailures: cfg.Catalog.BreakerFailures,
		OpenTimeout: cfg.Catalog.BreakerTimeout,
	}, logger)
	tree.AddDataService(services.NewCatalogService(reloader, engine, services.CatalogServiceConfig{
		ReloadInterval: cfg.Catalog.ReloadInterval,
		SweepInterval:  cacheSweepInterval(cfg),
	}, logger))

	if cfg.Server.RateLimitDisabled {
		logger.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	router := api.NewRouter(
		api.NewHandler(engine, version),
		api.NewChiMiddleware(buildChiMiddlewareConfig(cfg)),
		logger,
	)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logger.Info().Str("addr", server.Addr).Msg("Server listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Supervisor tree stopped with error")
		closeSource()
		os.Exit(1)
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		logger.Warn().Int("count", len(report)).Msg("Services did not stop within the shutdown timeout")
	}
	logger.Info().Msg("Shutdown complete")
}
