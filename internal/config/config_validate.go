// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateEncoder()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.read_timeout and server.write_timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitReqs < 1 {
			return fmt.Errorf("server.rate_limit_reqs must be positive, got %d", c.Server.RateLimitReqs)
		}
		if c.Server.RateLimitWindow <= 0 {
			return fmt.Errorf("server.rate_limit_window must be positive, got %v", c.Server.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case CatalogSourceSeed, CatalogSourceBadger:
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required when catalog.source=file")
		}
	default:
		return fmt.Errorf("catalog.source must be one of seed, file, badger, got %q", c.Catalog.Source)
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("catalog.reload_interval must not be negative, got %v", c.Catalog.ReloadInterval)
	}
	if c.Catalog.BreakerFailures < 1 {
		return fmt.Errorf("catalog.breaker_failures must be positive, got %d", c.Catalog.BreakerFailures)
	}
	if c.Catalog.BreakerTimeout <= 0 {
		return fmt.Errorf("catalog.breaker_timeout must be positive, got %v", c.Catalog.BreakerTimeout)
	}
	return nil
}

// validateRecommend only checks what the engine cannot. The engine validates
// its own config when it is built.
func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be positive, got %d", c.Recommend.DefaultLimit)
	}
	if c.Recommend.MaxLimit < c.Recommend.DefaultLimit {
		return fmt.Errorf("recommend.max_limit must be >= recommend.default_limit, got %d < %d",
			c.Recommend.MaxLimit, c.Recommend.DefaultLimit)
	}
	if c.Recommend.RequestTimeout <= 0 {
		return fmt.Errorf("recommend.request_timeout must be positive, got %v", c.Recommend.RequestTimeout)
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if c.Encoder.HashBuckets < 0 {
		return fmt.Errorf("encoder.hash_buckets must not be negative, got %d", c.Encoder.HashBuckets)
	}
	if c.Encoder.ConceptWeight <= 0 {
		return fmt.Errorf("encoder.concept_weight must be positive, got %f", c.Encoder.ConceptWeight)
	}
	return nil
}
