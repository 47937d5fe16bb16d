// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package supervisor runs the long-lived parts of crossrec under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("crossrec")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService (periodic catalog reload and cache sweep)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A reload loop that panics or returns an error is restarted with backoff
while the HTTP server keeps answering from the active snapshot.

# Logging

Supervisor events (service failures, restarts, backoff) go through
sutureslog, which takes a *slog.Logger. The application passes the zerolog
bridge from the logging package so every line shares one format:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewCatalogService(reloader, engine, svcCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

# Testing

MockService counts starts and stops and can be told to fail a number of
times, which is enough to observe restart behavior without real services.
*/
package supervisor
