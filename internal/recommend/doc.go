// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package recommend ranks catalog items of one category against free-text
// preferences expressed in another.
//
// # Pipeline
//
// A request flows through four stages:
//
//   - Validation: categories are normalized and checked against the active
//     catalog snapshot, blank preferences are dropped and the limit is
//     defaulted or clamped. Nothing is scored for an invalid request.
//   - Encoding: each preference is mapped into the snapshot's feature space.
//     Text with no known vocabulary falls back to the baseline vector.
//   - Scoring: every target item is compared with every preference vector.
//     An item keeps its best score (max aggregation) and the preference that
//     produced it. Items with unusable vectors are skipped and counted.
//   - Ranking: a stable sort by descending score keeps ties in catalog order,
//     then the list is truncated to the limit. Lists are never padded.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, nil, logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    SourceCategory: "movies",
//	    TargetCategory: "books",
//	    Preferences:    []string{"space opera", "heist thriller"},
//	    Limit:          5,
//	})
//
// # Thread Safety
//
// The engine reads the catalog snapshot once per request and never mutates
// it, so a concurrent reload cannot change a result midway. Engine, Ranker
// and the result cache are safe for concurrent use.
package recommend
