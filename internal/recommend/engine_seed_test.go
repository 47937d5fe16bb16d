// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package recommend

import (
	"context"
	"testing"

	"github.com/tomtom215/crossrec/internal/catalog"
	"github.com/tomtom215/crossrec/internal/encoder"
)

// newSeedEngine builds an engine over the built-in catalog with the default encoder.
func newSeedEngine(t *testing.T) (*Engine, *catalog.Snapshot) {
	t.Helper()
	fit := func(corpus []string) catalog.Featurizer {
		return encoder.Fit(encoder.DefaultConfig(), nil, corpus)
	}
	snap, err := catalog.Load(context.Background(), catalog.SeedSource{}, fit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	e, err := NewEngine(nil, catalog.NewStore(snap), nil, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e, snap
}

func TestEngine_SeedCatalog_VocabularyHasNoSharedSlots(t *testing.T) {
	_, snap := newSeedEngine(t)

	model, ok := snap.Featurizer().(*encoder.Model)
	if !ok {
		t.Fatalf("featurizer is %T, want *encoder.Model", snap.Featurizer())
	}
	if n := model.SharedSlots(); n != 0 {
		t.Errorf("SharedSlots() = %d, want 0 for %d vocabulary tokens", n, model.VocabularySize())
	}
}

func TestEngine_SeedCatalog_TitleAnchoring(t *testing.T) {
	e, _ := newSeedEngine(t)

	for _, pref := range []string{"The Great Gatsby", "  the GREAT   gatsby "} {
		t.Run(pref, func(t *testing.T) {
			resp, err := e.Recommend(context.Background(), Request{
				SourceCategory: "books",
				TargetCategory: "movies",
				Preferences:    []string{pref},
				Limit:          8,
			})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}

			// Gatsby is a Drama: the one drama film first, then the crime
			// drama.
			got := ids(resp)
			if len(got) < 2 || got[0] != "movie_5" || got[1] != "movie_7" {
				t.Fatalf("ids = %v, want movie_5 then movie_7 first", got)
			}
			if resp.Recommendations[0].AnchorItemID != "book_3" {
				t.Errorf("AnchorItemID = %q, want book_3", resp.Recommendations[0].AnchorItemID)
			}
			if resp.Metadata.AnchoredPreferences != 1 {
				t.Errorf("AnchoredPreferences = %d, want 1", resp.Metadata.AnchoredPreferences)
			}
		})
	}
}

func TestEngine_SeedCatalog_NoSharedVocabularyScoresZero(t *testing.T) {
	e, _ := newSeedEngine(t)

	// No song is titled The Great Gatsby, so the words are encoded alone.
	// No film shares a token or a concept with them.
	resp, err := e.Recommend(context.Background(), Request{
		SourceCategory: "songs",
		TargetCategory: "movies",
		Preferences:    []string{"The Great Gatsby"},
		Limit:          8,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.FallbackPreferences != 0 {
		t.Fatalf("FallbackPreferences = %d, want 0: both words are catalog vocabulary", resp.Metadata.FallbackPreferences)
	}
	if resp.Metadata.AnchoredPreferences != 0 {
		t.Errorf("AnchoredPreferences = %d, want 0", resp.Metadata.AnchoredPreferences)
	}
	if len(resp.Recommendations) != 8 {
		t.Fatalf("got %d recommendations, want 8", len(resp.Recommendations))
	}
	for _, r := range resp.Recommendations {
		if r.Score != 0 {
			t.Errorf("%s (%s) score = %v, want exactly 0", r.Item.ID, r.Item.Title, r.Score)
		}
		if r.AnchorItemID != "" {
			t.Errorf("%s AnchorItemID = %q, want empty", r.Item.ID, r.AnchorItemID)
		}
	}
}
