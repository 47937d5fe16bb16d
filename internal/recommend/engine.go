// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/crossrec/internal/cache"
	"github.com/tomtom215/crossrec/internal/catalog"
	"github.com/tomtom215/crossrec/internal/logging"
	"github.com/tomtom215/crossrec/internal/metrics"
	"github.com/tomtom215/crossrec/internal/similarity"
)

const cacheType = "recommend"

// CatalogProvider returns the active catalog snapshot. *catalog.Store implements it.
type CatalogProvider interface {
	Current() *catalog.Snapshot
}

// Engine turns preference text from one category into ranked items of another.
// It is stateless per call and safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog CatalogProvider
	ranker  *Ranker

	// cache is nil when result caching is disabled.
	cache *cache.LRU[*Response]

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	rejectedCount atomic.Int64
	timeoutCount  atomic.Int64
	canceledCount atomic.Int64
}

// NewEngine creates a recommendation engine reading catalog snapshots from provider.
// A nil scorer uses cosine similarity clamped to [0, 1].
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, provider CatalogProvider, scorer Scorer, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, errors.New("catalog provider is required")
	}
	if scorer == nil {
		scorer = similarity.Cosine01{}
	}

	logger = logger.With().Str("component", "recommend").Logger()

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger,
		catalog: provider,
		ranker:  NewRanker(scorer, cfg.Limits.Workers, logger),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// validated is a request after trimming, defaulting and category checks.
type validated struct {
	source string
	target catalog.Category
	prefs  []string
	limit  int
}

// Recommend ranks the target category's items against the request preferences.
//
// Invalid requests fail with *ValidationError before the catalog is scanned.
// A request that exceeds its deadline fails with *TimeoutError.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	snap := e.catalog.Current()
	if snap == nil {
		e.errorCount.Add(1)
		return nil, ErrNoCatalog
	}

	req = e.prepareRequest(ctx, req)
	v, err := e.validate(snap, req)
	if err != nil {
		e.rejectedCount.Add(1)
		metrics.RecordRecommendation(metricLabel(snap, req.SourceCategory), metricLabel(snap, req.TargetCategory), "validation", time.Since(start))
		return nil, err
	}

	logger := e.createRequestLogger(req, v)
	logger.Debug().Int("preferences", len(v.prefs)).Int("limit", v.limit).Msg("processing recommendation request")

	key := cacheKey(snap.Version(), v)
	if resp := e.tryGetCachedResponse(key, req.RequestID, start); resp != nil {
		metrics.RecordRecommendation(v.source, string(v.target), "ok", time.Since(start))
		logger.Debug().Msg("recommendation served from cache")
		return resp, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	resp, err := e.compute(ctx, snap, v, req.RequestID, logger)
	if err != nil {
		var outcome string
		switch {
		case IsTimeout(err):
			outcome = "timeout"
			e.timeoutCount.Add(1)
			logger.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("recommendation timed out")
		case errors.Is(err, context.Canceled):
			// The caller went away; nothing failed on our side.
			outcome = "canceled"
			e.canceledCount.Add(1)
			logger.Debug().Err(err).Msg("recommendation canceled by caller")
		default:
			outcome = "error"
			e.errorCount.Add(1)
			logger.Error().Err(err).Msg("recommendation failed")
		}
		metrics.RecordRecommendation(v.source, string(v.target), outcome, time.Since(start))
		return nil, err
	}

	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	e.cacheResponse(key, resp)
	metrics.RecordRecommendation(v.source, string(v.target), "ok", time.Since(start))

	logger.Debug().
		Int("scored", resp.Metadata.CandidatesScored).
		Int("returned", resp.TotalCount).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest fills in the request ID from the context or a new UUID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	return req
}

// validate rejects requests that cannot produce a result. It never touches
// catalog items, only the category index.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) validate(snap *catalog.Snapshot, req Request) (validated, error) {
	var v validated

	v.source = normalizeCategory(req.SourceCategory)
	if v.source == "" {
		return v, &ValidationError{Field: "source_category", Message: "is required"}
	}
	if !snap.Has(catalog.Category(v.source)) {
		return v, &ValidationError{Field: "source_category", Message: fmt.Sprintf("unknown category %q", req.SourceCategory)}
	}

	v.target = catalog.Category(normalizeCategory(req.TargetCategory))
	if v.target == "" {
		return v, &ValidationError{Field: "target_category", Message: "is required"}
	}
	if !snap.Has(v.target) {
		return v, &ValidationError{Field: "target_category", Message: fmt.Sprintf("unknown category %q", req.TargetCategory)}
	}

	v.prefs = make([]string, 0, len(req.Preferences))
	for _, p := range req.Preferences {
		if p = strings.TrimSpace(p); p != "" {
			v.prefs = append(v.prefs, p)
		}
	}
	if len(v.prefs) == 0 {
		return v, &ValidationError{Field: "preferences", Message: "at least one non-blank preference is required"}
	}
	if len(v.prefs) > e.config.Limits.MaxPreferences {
		return v, &ValidationError{
			Field:   "preferences",
			Message: fmt.Sprintf("at most %d preferences are allowed, got %d", e.config.Limits.MaxPreferences, len(v.prefs)),
		}
	}

	v.limit = e.effectiveLimit(req.Limit)
	return v, nil
}

// effectiveLimit applies the default to non-positive limits and clamps to MaxLimit.
func (e *Engine) effectiveLimit(limit int) int {
	if limit <= 0 {
		return e.config.Limits.DefaultLimit
	}
	if limit > e.config.Limits.MaxLimit {
		return e.config.Limits.MaxLimit
	}
	return limit
}

// compute encodes the preferences and ranks the target category. A
// preference that names an item of the source category is encoded together
// with that item's text.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) compute(ctx context.Context, snap *catalog.Snapshot, v validated, requestID string, logger zerolog.Logger) (*Response, error) {
	f := snap.Featurizer()

	vectors := make([][]float64, len(v.prefs))
	anchors := make([]string, len(v.prefs))
	fallbacks, anchored := 0, 0
	for i, p := range v.prefs {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, &TimeoutError{Stage: "encode", Err: err}
			}
			return nil, fmt.Errorf("encode canceled: %w", err)
		}
		text := p
		if it, ok := snap.FindTitle(catalog.Category(v.source), p); ok {
			// A preference naming a source item carries that item's genre
			// and description into the shared space.
			text = p + " " + it.Text()
			anchors[i] = it.ID
			anchored++
			logger.Debug().Str("preference", p).Str("anchor_item", it.ID).Msg("preference matched a source item")
		}
		vec, fallback := f.Encode(text, v.source)
		if fallback {
			fallbacks++
			logger.Debug().Str("preference", p).Msg("no known vocabulary, using baseline vector")
		}
		vectors[i] = vec
	}
	metrics.RecordEncoderFallbacks(v.source, fallbacks)

	items, _ := snap.Items(v.target)
	scored, stats, err := e.ranker.Rank(ctx, vectors, items, v.limit)
	if err != nil {
		return nil, err
	}
	metrics.RecordCandidates(string(v.target), stats.Scored, stats.Skipped)

	for i := range scored {
		scored[i].MatchedPreference = v.prefs[scored[i].MatchedIndex]
		scored[i].AnchorItemID = anchors[scored[i].MatchedIndex]
	}

	return &Response{
		Recommendations: scored,
		SourceCategory:  v.source,
		TargetCategory:  string(v.target),
		TotalCount:      len(scored),
		Metadata: ResponseMetadata{
			RequestID:           requestID,
			CatalogVersion:      snap.Version(),
			Limit:               v.limit,
			CandidatesScored:    stats.Scored,
			CandidatesSkipped:   stats.Skipped,
			FallbackPreferences: fallbacks,
			AnchoredPreferences: anchored,
			Timestamp:           time.Now(),
		},
	}, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request, v validated) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("source_category", v.source).
		Str("target_category", string(v.target)).
		Logger()
}

// tryGetCachedResponse returns a copy of a cached response with fresh metadata.
// The recommendations slice is shared and must be treated as read-only.
func (e *Engine) tryGetCachedResponse(key, requestID string, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(cacheType, ok)
	if !ok {
		return nil
	}

	resp := *cached
	resp.Metadata.RequestID = requestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	return &resp
}

// cacheResponse stores a response for identical future requests.
func (e *Engine) cacheResponse(key string, resp *Response) {
	if e.cache == nil {
		return
	}
	e.cache.Add(key, resp)
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(e.cache.Len()))
}

// cacheKey identifies a result. The snapshot version makes entries from an
// older catalog unreachable after a reload.
func cacheKey(version uint64, v validated) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(version, 10))
	b.WriteByte('|')
	b.WriteString(v.source)
	b.WriteByte('|')
	b.WriteString(string(v.target))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(v.limit))
	for _, p := range v.prefs {
		b.WriteByte(0x1f)
		b.WriteString(p)
	}
	return b.String()
}

// Categories describes the categories of the active catalog.
func (e *Engine) Categories() []catalog.CategoryInfo {
	snap := e.catalog.Current()
	if snap == nil {
		return nil
	}
	return snap.Categories()
}

// CatalogVersion returns the active snapshot version, or 0 if none is loaded.
func (e *Engine) CatalogVersion() uint64 {
	snap := e.catalog.Current()
	if snap == nil {
		return 0
	}
	return snap.Version()
}

// Stats returns engine counters. Cache counters come from the result cache
// itself and stay zero when caching is disabled.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:       e.requestCount.Load(),
		Errors:         e.errorCount.Load(),
		Rejected:       e.rejectedCount.Load(),
		Timeouts:       e.timeoutCount.Load(),
		Canceled:       e.canceledCount.Load(),
		CatalogVersion: e.CatalogVersion(),
	}
	if e.cache != nil {
		cs := e.cache.Stats()
		s.CacheHits = cs.Hits
		s.CacheMisses = cs.Misses
		s.CacheEvictions = cs.Evictions
		s.CacheEntries = cs.Size
	}
	return s
}

// ClearCache drops all cached results.
func (e *Engine) ClearCache() {
	if e.cache == nil {
		return
	}
	e.cache.Clear()
	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
}

// SweepCache removes expired results and returns how many were removed.
func (e *Engine) SweepCache() int {
	if e.cache == nil {
		return 0
	}
	n := e.cache.CleanupExpired()
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(e.cache.Len()))
	return n
}

func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// metricLabel bounds label cardinality: unknown categories share one label.
func metricLabel(snap *catalog.Snapshot, category string) string {
	c := normalizeCategory(category)
	if c != "" && snap.Has(catalog.Category(c)) {
		return c
	}
	return "unknown"
}
