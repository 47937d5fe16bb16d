// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/crossrec/internal/catalog"
)

// Scorer compares a preference vector with an item vector and returns a
// similarity in [0, 1]. An error marks the item vector as unusable.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Score(pref, item []float64) (float64, error)
}

// RankStats reports what happened to the candidates of one ranking.
type RankStats struct {
	Scored  int
	Skipped int
}

// Ranker scores every candidate against every preference vector and keeps
// the best match per candidate. It holds no per-request state.
type Ranker struct {
	scorer  Scorer
	workers int
	logger  zerolog.Logger
}

// NewRanker creates a ranker that fans candidate scoring out to workers goroutines.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRanker(scorer Scorer, workers int, logger zerolog.Logger) *Ranker {
	if workers < 1 {
		workers = 1
	}
	return &Ranker{
		scorer:  scorer,
		workers: workers,
		logger:  logger,
	}
}

// slot holds the outcome for one candidate. Each worker writes only the
// slots of the indexes it receives.
type slot struct {
	score float64
	pref  int
	err   error
}

// Rank returns at most limit items sorted by descending score.
//
// An item's score is the maximum over all preference vectors; on equal scores
// the earlier preference is reported as the match. Items tie-break by catalog
// order. Items whose vectors cannot be scored are skipped and counted.
//
// No new candidate is dispatched once ctx is done; the partial result is
// discarded and a *TimeoutError is returned for an expired deadline.
func (r *Ranker) Rank(ctx context.Context, prefs [][]float64, items []catalog.Item, limit int) ([]ScoredItem, RankStats, error) {
	var stats RankStats
	if len(prefs) == 0 {
		return nil, stats, errors.New("rank: no preference vectors")
	}
	if limit < 1 {
		return nil, stats, fmt.Errorf("rank: limit must be positive, got %d", limit)
	}
	if len(items) == 0 {
		return []ScoredItem{}, stats, nil
	}

	slots := make([]slot, len(items))
	workers := r.workers
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				slots[i] = r.scoreItem(prefs, &items[i])
			}
		}()
	}

	var ctxErr error
dispatch:
	for i := range items {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, stats, &TimeoutError{Stage: "score", Err: ctxErr}
		}
		return nil, stats, fmt.Errorf("rank canceled: %w", ctxErr)
	}

	results := make([]ScoredItem, 0, len(items))
	for i := range slots {
		if slots[i].err != nil {
			stats.Skipped++
			r.logger.Warn().
				Err(slots[i].err).
				Str("item_id", items[i].ID).
				Str("category", string(items[i].Category)).
				Msg("skipping candidate with unusable vector")
			continue
		}
		stats.Scored++
		results = append(results, ScoredItem{
			Item:         &items[i],
			Score:        slots[i].score,
			MatchedIndex: slots[i].pref,
		})
	}

	// results are in catalog order, so a stable sort keeps ties in catalog order.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, stats, nil
}

// scoreItem aggregates one candidate with max over the preference vectors.
func (r *Ranker) scoreItem(prefs [][]float64, item *catalog.Item) slot {
	best := slot{score: -1}
	for p, v := range prefs {
		s, err := r.scorer.Score(v, item.Vector)
		if err != nil {
			return slot{err: err}
		}
		if math.IsNaN(s) || s < 0 || s > 1 {
			return slot{err: fmt.Errorf("score %v outside [0, 1]", s)}
		}
		if s > best.score {
			best.score = s
			best.pref = p
		}
	}
	return best
}
