// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package config

import (
	"net"
	"strconv"
	"time"
)

// Catalog source kinds.
const (
	CatalogSourceSeed   = "seed"
	CatalogSourceFile   = "file"
	CatalogSourceBadger = "badger"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after LoadWithKoanf() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Encoder   EncoderConfig   `koanf:"encoder"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed browser origins. "*" allows any origin.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs and RateLimitWindow bound POST /recommend per client IP.
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig selects where catalog items come from.
//
// Environment Variables:
//   - CATALOG_SOURCE: seed, file or badger (default: seed)
//   - CATALOG_PATH: JSON file or directory for the file source
//   - CATALOG_BADGER_PATH: badger directory, empty for in-memory
//   - CATALOG_RELOAD_INTERVAL: how often to re-read the source, 0 disables
type CatalogConfig struct {
	Source         string        `koanf:"source"`
	Path           string        `koanf:"path"`
	BadgerPath     string        `koanf:"badger_path"`
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// SeedFallback fills categories missing from a file source with the
	// built-in seed catalog.
	SeedFallback bool `koanf:"seed_fallback"`

	// BreakerFailures consecutive failed reloads open the reload circuit
	// breaker for BreakerTimeout.
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	DefaultLimit   int                  `koanf:"default_limit"`
	MaxLimit       int                  `koanf:"max_limit"`
	MaxPreferences int                  `koanf:"max_preferences"`
	RequestTimeout time.Duration        `koanf:"request_timeout"`
	Workers        int                  `koanf:"workers"`
	Cache          RecommendCacheConfig `koanf:"cache"`
}

// RecommendCacheConfig holds result cache settings.
type RecommendCacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// EncoderConfig holds preference encoder settings.
type EncoderConfig struct {
	HashBuckets   int     `koanf:"hash_buckets"`
	ConceptWeight float64 `koanf:"concept_weight"`
	TokenWeight   float64 `koanf:"token_weight"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
