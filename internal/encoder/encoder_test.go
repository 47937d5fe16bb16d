// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package encoder

import (
	"math"
	"reflect"
	"testing"
)

func testModel() *Model {
	return Fit(DefaultConfig(), nil, []string{
		"Minecraft Sandbox Creative sandbox game",
		"The Lord of the Rings Fantasy Epic fantasy adventure",
		"The Matrix Sci-Fi Cyberpunk action thriller",
	})
}

func norm2(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (norm2(a) * norm2(b))
}

func TestModel_Dimension(t *testing.T) {
	t.Parallel()

	m := testModel()
	want := len(DefaultLexicon) + DefaultConfig().HashBuckets
	if m.Dimension() != want {
		t.Errorf("Dimension() = %d, want %d", m.Dimension(), want)
	}

	vec, _ := m.Encode("space opera", "books")
	if len(vec) != want {
		t.Errorf("len(Encode()) = %d, want %d", len(vec), want)
	}
}

func TestModel_EncodeDeterministic(t *testing.T) {
	t.Parallel()

	m := testModel()
	a, fa := m.Encode("Epic fantasy with dragons", "books")
	b, fb := m.Encode("Epic fantasy with dragons", "books")
	if fa || fb {
		t.Fatal("expected known vocabulary, got fallback")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical text produced different vectors")
	}

	// A second model fitted on the same corpus must agree.
	c, _ := testModel().Encode("Epic fantasy with dragons", "books")
	if !reflect.DeepEqual(a, c) {
		t.Error("independently fitted models produced different vectors")
	}
}

func TestModel_EncodeIsUnitLength(t *testing.T) {
	t.Parallel()

	m := testModel()
	for _, text := range []string{"fantasy", "sci-fi robots in space", "minecraft", "zzzqqq", ""} {
		vec, _ := m.Encode(text, "movies")
		if got := norm2(vec); math.Abs(got-1) > 1e-9 {
			t.Errorf("Encode(%q) norm = %f, want 1", text, got)
		}
	}
}

func TestModel_UnknownVocabularyFallsBack(t *testing.T) {
	t.Parallel()

	m := testModel()
	tests := map[string]string{
		"gibberish": "xyzzy plugh",
		"empty":     "",
		"stopwords": "the and of",
		"symbols":   "!!! ??? ...",
		"emoji":     "🚀🚀🚀",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			vec, fallback := m.Encode(text, "games")
			if !fallback {
				t.Errorf("Encode(%q) fallback = false, want true", text)
			}
			if !reflect.DeepEqual(vec, m.Baseline()) {
				t.Errorf("Encode(%q) did not return the baseline vector", text)
			}
		})
	}
}

func TestModel_CatalogVocabularyMatchesAcrossCategories(t *testing.T) {
	t.Parallel()

	m := testModel()
	pref, fallback := m.Encode("minecraft", "movies")
	if fallback {
		t.Fatal("catalog word should be known vocabulary")
	}

	minecraft, _ := m.Encode("Minecraft Sandbox Creative sandbox game", "games")
	matrix, _ := m.Encode("The Matrix Sci-Fi Cyberpunk action thriller", "games")
	if cosine(pref, minecraft) <= cosine(pref, matrix) {
		t.Errorf("minecraft preference should be closer to Minecraft than to The Matrix")
	}
}

func TestModel_ConceptSpaceIsShared(t *testing.T) {
	t.Parallel()

	m := testModel()
	book, _ := m.Encode("wizards and dragons", "books")
	fantasyGame, _ := m.Encode("Epic fantasy RPG", "games")
	puzzleGame, _ := m.Encode("Innovative puzzle game", "games")

	if cosine(book, fantasyGame) <= cosine(book, puzzleGame) {
		t.Errorf("fantasy book preference should be closer to a fantasy game than a puzzle game")
	}
}

func TestModel_UnicodeNormalization(t *testing.T) {
	t.Parallel()

	m := testModel()
	plain, _ := m.Encode("FANTASY", "books")
	fullwidth, _ := m.Encode("ＦＡＮＴＡＳＹ", "books")
	if !reflect.DeepEqual(plain, fullwidth) {
		t.Error("full-width and ASCII text should encode identically after NFKC folding")
	}
}

func TestModel_NoHashBuckets(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.HashBuckets = 0
	m := Fit(cfg, nil, []string{"Bohemian Rhapsody"})
	if m.Dimension() != len(DefaultLexicon) {
		t.Errorf("Dimension() = %d, want %d", m.Dimension(), len(DefaultLexicon))
	}
	if _, fallback := m.Encode("rhapsody", "songs"); !fallback {
		t.Error("without vocabulary buckets a non-lexicon word should fall back")
	}
}

func TestModel_VocabularyTokensOwnDistinctSlots(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.HashBuckets = 16
	corpus := []string{"gatsby prison drama", "hope redemption shawshank", "crime epic godfather"}
	m := Fit(cfg, []Concept{}, corpus)

	if m.VocabularySize() != 9 {
		t.Fatalf("VocabularySize() = %d, want 9", m.VocabularySize())
	}
	if n := m.SharedSlots(); n != 0 {
		t.Errorf("SharedSlots() = %d, want 0 while the vocabulary fits", n)
	}

	seen := make(map[int]string)
	for _, text := range corpus {
		for _, tok := range Tokenize(text) {
			slot, ok := m.VocabularySlot(tok)
			if !ok {
				t.Fatalf("VocabularySlot(%q) not found", tok)
			}
			if other, dup := seen[slot]; dup && other != tok {
				t.Errorf("%q and %q share slot %d", tok, other, slot)
			}
			seen[slot] = tok
		}
	}

	// Disjoint words must be orthogonal.
	a, _ := m.Encode("gatsby", "books")
	b, _ := m.Encode("prison drama hope", "movies")
	if got := cosine(a, b); got != 0 {
		t.Errorf("cosine(gatsby, prison drama hope) = %v, want exactly 0", got)
	}
}

func TestModel_VocabularyOverflowSharesSlots(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.HashBuckets = 2
	m := Fit(cfg, []Concept{}, []string{"alpha bravo charlie delta"})

	if m.Dimension() != 2 {
		t.Fatalf("Dimension() = %d, want 2", m.Dimension())
	}
	if n := m.SharedSlots(); n < 2 {
		t.Errorf("SharedSlots() = %d, want at least 2 once four tokens share two slots", n)
	}
	for _, tok := range []string{"alpha", "bravo", "charlie", "delta"} {
		if slot, ok := m.VocabularySlot(tok); !ok || slot < 0 || slot >= 2 {
			t.Errorf("VocabularySlot(%q) = %d, %v", tok, slot, ok)
		}
	}
}

func TestModel_SlotLayoutIgnoresCorpusOrder(t *testing.T) {
	t.Parallel()

	a := Fit(DefaultConfig(), nil, []string{"Bohemian Rhapsody", "Pulp Fiction"})
	b := Fit(DefaultConfig(), nil, []string{"Pulp Fiction", "Bohemian Rhapsody"})
	va, _ := a.Encode("rhapsody fiction", "songs")
	vb, _ := b.Encode("rhapsody fiction", "songs")
	if !reflect.DeepEqual(va, vb) {
		t.Error("models fitted on the same vocabulary in a different order disagree")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative buckets", func(c *Config) { c.HashBuckets = -1 }, true},
		{"zero concept weight", func(c *Config) { c.ConceptWeight = 0 }, true},
		{"negative token weight", func(c *Config) { c.TokenWeight = -0.1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
