// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package recommend

import (
	"time"

	"github.com/tomtom215/crossrec/internal/catalog"
)

// Request asks for items of TargetCategory that match free-text preferences
// expressed in SourceCategory.
type Request struct {
	// SourceCategory is the domain the preferences come from. A preference
	// equal to the title of one of its items is expanded with that item's
	// genre and description before encoding.
	SourceCategory string `json:"source_category"`

	// TargetCategory is the catalog category to rank.
	TargetCategory string `json:"target_category"`

	// Preferences are free-text preference strings. Blank entries are ignored;
	// duplicates each contribute independently.
	Preferences []string `json:"preferences"`

	// Limit is the maximum number of results.
	// Defaults to Config.Limits.DefaultLimit if zero or negative.
	Limit int `json:"limit,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredItem is a catalog item with its aggregated similarity score.
type ScoredItem struct {
	// Item points into the catalog snapshot and must not be modified.
	Item *catalog.Item `json:"item"`

	// Score is the maximum similarity across preferences, in [0, 1].
	Score float64 `json:"score"`

	// MatchedPreference is the preference string that produced Score.
	MatchedPreference string `json:"matched_preference"`

	// MatchedIndex is the position of MatchedPreference among the
	// non-blank preferences.
	MatchedIndex int `json:"matched_index"`

	// AnchorItemID is the source item MatchedPreference named, if any.
	AnchorItemID string `json:"anchor_item_id,omitempty"`
}

// Response is an ordered recommendation result.
type Response struct {
	// Recommendations are sorted by descending score, ties in catalog order.
	Recommendations []ScoredItem `json:"recommendations"`

	SourceCategory string `json:"source_category"`
	TargetCategory string `json:"target_category"`

	// TotalCount is len(Recommendations).
	TotalCount int `json:"total_count"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// CatalogVersion is the snapshot version the result was computed from.
	CatalogVersion uint64 `json:"catalog_version"`

	// Limit is the effective limit after defaulting and clamping.
	Limit int `json:"limit"`

	// CandidatesScored is the number of target items scored.
	CandidatesScored int `json:"candidates_scored"`

	// CandidatesSkipped is the number of target items with unusable vectors.
	CandidatesSkipped int `json:"candidates_skipped"`

	// FallbackPreferences counts preferences encoded as the baseline vector.
	FallbackPreferences int `json:"fallback_preferences"`

	// AnchoredPreferences counts preferences that matched a source item title.
	AnchoredPreferences int `json:"anchored_preferences"`

	// CacheHit indicates whether the result was served from cache.
	CacheHit bool `json:"cache_hit"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests       int64  `json:"requests"`
	Errors         int64  `json:"errors"`
	Rejected       int64  `json:"rejected"`
	Timeouts       int64  `json:"timeouts"`
	Canceled       int64  `json:"canceled"`
	CacheHits      int64  `json:"cache_hits"`
	CacheMisses    int64  `json:"cache_misses"`
	CacheEvictions int64  `json:"cache_evictions"`
	CacheEntries   int    `json:"cache_entries"`
	CatalogVersion uint64 `json:"catalog_version"`
}
