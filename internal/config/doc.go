// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package config provides centralized configuration management for Crossrec.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The merged result is validated before
any component is built.

# Config File

The file is read from CONFIG_PATH, or the first of config.yaml, config.yml,
/etc/crossrec/config.yaml and /etc/crossrec/config.yml that exists:

	server:
	  port: 8000
	  cors_origins: ["http://localhost:5173"]
	catalog:
	  source: file
	  path: /data/catalog
	  reload_interval: 1m
	recommend:
	  default_limit: 6
	  cache:
	    ttl: 5m

# Environment Variables

Only mapped variables are read. Common ones:

  - HTTP_HOST, HTTP_PORT: listen address (default: 0.0.0.0:8000)
  - CORS_ORIGINS: comma-separated allowed origins
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - CATALOG_SOURCE: seed, file or badger (default: seed)
  - CATALOG_PATH, CATALOG_BADGER_PATH, CATALOG_RELOAD_INTERVAL
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_REQUEST_TIMEOUT
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES
  - ENCODER_HASH_BUCKETS, ENCODER_CONCEPT_WEIGHT, ENCODER_TOKEN_WEIGHT

# Thread Safety

Config is immutable after LoadWithKoanf and safe for concurrent reads.
*/
package config
