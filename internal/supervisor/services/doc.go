// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package services adapts crossrec components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe/Shutdown pair into a
// context-aware Serve. CatalogService reloads the catalog on a ticker and
// sweeps expired recommendation cache entries. Both depend on small
// interfaces so tests can drive them with fakes.
package services
