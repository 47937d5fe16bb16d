// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package logging provides the zerolog-based structured logger used across crossrec.
//
// A process-wide logger is configured once from main:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("listening")
//
// Components derive child loggers with a component field:
//
//	logger := logging.WithComponent("catalog")
//
// Request handlers attach the request ID to the context and log through Ctx:
//
//	ctx = logging.ContextWithRequestID(ctx, logging.GenerateRequestID())
//	logging.Ctx(ctx).Warn().Err(err).Msg("recommendation timed out")
//
// # Configuration
//
//	logging.level   - trace, debug, info, warn, error (default: info)
//	logging.format  - json, console (default: json)
//	logging.caller  - include caller file:line (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated event is never written.
//
// SlogHandler adapts zerolog to log/slog for the suture supervisor event hook.
package logging
