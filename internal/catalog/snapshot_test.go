// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/crossrec/internal/encoder"
)

// fakeFeaturizer puts all weight on one dimension chosen by text length.
type fakeFeaturizer struct {
	dim int
}

func (f fakeFeaturizer) Dimension() int {
	return f.dim
}

func (f fakeFeaturizer) Encode(text, _ string) ([]float64, bool) {
	v := make([]float64, f.dim)
	v[len(text)%f.dim] = 1
	return v, false
}

func fitFake(dim int) FitFunc {
	return func([]string) Featurizer {
		return fakeFeaturizer{dim: dim}
	}
}

func fitEncoder(corpus []string) Featurizer {
	return encoder.Fit(encoder.DefaultConfig(), nil, corpus)
}

// funcSource adapts a function to Source.
type funcSource struct {
	name  string
	fetch func(ctx context.Context) (*Document, error)
}

func (s *funcSource) Name() string {
	return s.name
}

func (s *funcSource) Fetch(ctx context.Context) (*Document, error) {
	return s.fetch(ctx)
}

func smallDoc() *Document {
	return &Document{Categories: []CategoryItems{
		{Name: "movies", Items: []Item{
			{ID: "m1", Title: "Alpha"},
			{ID: "m2", Title: "Beta", Genre: "Drama"},
		}},
		{Name: "books", Items: []Item{
			{ID: "b1", Title: "Gamma", Vector: []float64{1, 0, 0, 0}},
		}},
	}}
}

func TestNew_AssignsOrderAndVectors(t *testing.T) {
	snap, err := New("test", smallDoc(), fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	movies, ok := snap.Items("movies")
	if !ok {
		t.Fatal("movies category missing")
	}
	if len(movies) != 2 {
		t.Fatalf("len(movies) = %d, want 2", len(movies))
	}
	for i, it := range movies {
		if it.Position != i {
			t.Errorf("movies[%d].Position = %d", i, it.Position)
		}
		if it.Category != "movies" {
			t.Errorf("movies[%d].Category = %q", i, it.Category)
		}
		if len(it.Vector) != 4 {
			t.Errorf("movies[%d] vector dimension = %d, want 4", i, len(it.Vector))
		}
	}

	books, _ := snap.Items("books")
	if books[0].Vector[0] != 1 {
		t.Errorf("supplied vector was replaced: %v", books[0].Vector)
	}

	if snap.Len() != 3 {
		t.Errorf("Len() = %d, want 3", snap.Len())
	}
	if snap.Dimension() != 4 {
		t.Errorf("Dimension() = %d, want 4", snap.Dimension())
	}
	if _, ok := snap.Items("podcasts"); ok {
		t.Error("unknown category reported as present")
	}
	if snap.Has("podcasts") || !snap.Has("books") {
		t.Error("Has() mismatch")
	}

	cats := snap.Categories()
	if len(cats) != 2 || cats[0].Name != "movies" || cats[1].Name != "books" {
		t.Fatalf("Categories() = %+v, want catalog order movies, books", cats)
	}
	if cats[0].DisplayName != "Movies" || cats[0].ItemCount != 2 {
		t.Errorf("movies info = %+v", cats[0])
	}
}

func TestNew_LoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    *Document
		reason string
	}{
		{
			name: "nil document",
			doc:  nil,
		},
		{
			name: "no categories",
			doc:  &Document{},
		},
		{
			name:   "empty category",
			doc:    &Document{Categories: []CategoryItems{{Name: "movies"}}},
			reason: "zero items",
		},
		{
			name:   "unnamed category",
			doc:    &Document{Categories: []CategoryItems{{Name: "  ", Items: []Item{{ID: "a", Title: "A"}}}}},
			reason: "without a name",
		},
		{
			name: "duplicate category",
			doc: &Document{Categories: []CategoryItems{
				{Name: "movies", Items: []Item{{ID: "a", Title: "A"}}},
				{Name: "movies", Items: []Item{{ID: "b", Title: "B"}}},
			}},
			reason: "duplicate category",
		},
		{
			name:   "missing id",
			doc:    &Document{Categories: []CategoryItems{{Name: "movies", Items: []Item{{Title: "A"}}}}},
			reason: "has no id",
		},
		{
			name:   "missing title",
			doc:    &Document{Categories: []CategoryItems{{Name: "movies", Items: []Item{{ID: "a", Title: " "}}}}},
			reason: "no title",
		},
		{
			name: "duplicate id",
			doc: &Document{Categories: []CategoryItems{{Name: "movies", Items: []Item{
				{ID: "a", Title: "A"},
				{ID: "a", Title: "Again"},
			}}}},
			reason: "duplicate item id",
		},
		{
			name: "wrong vector dimension",
			doc: &Document{Categories: []CategoryItems{{Name: "movies", Items: []Item{
				{ID: "a", Title: "A", Vector: []float64{1, 2}},
			}}}},
			reason: "2 dimensions, want 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snap, err := New("test", tt.doc, fakeFeaturizer{dim: 4})
			if err == nil {
				t.Fatalf("New() = %v, want error", snap)
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error %T is not *LoadError", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err, tt.reason)
			}
		})
	}
}

func TestNew_VersionsIncrease(t *testing.T) {
	a, err := New("test", smallDoc(), fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("test", smallDoc(), fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatal(err)
	}
	if b.Version() <= a.Version() {
		t.Errorf("versions not increasing: %d then %d", a.Version(), b.Version())
	}
	if a.Digest() != b.Digest() {
		t.Error("identical documents produced different digests")
	}

	changed := smallDoc()
	changed.Categories[0].Items[1].Title = "Beta II"
	c, err := New("test", changed, fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatal(err)
	}
	if c.Digest() == a.Digest() {
		t.Error("changed document kept the same digest")
	}
}

func TestLoad_SeedWithEncoder(t *testing.T) {
	snap, err := Load(context.Background(), SeedSource{}, fitEncoder)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if snap.Len() != 32 {
		t.Errorf("Len() = %d, want 32", snap.Len())
	}
	if snap.Source() != "seed" {
		t.Errorf("Source() = %q", snap.Source())
	}

	want := []Category{Movies, Books, Songs, Games}
	cats := snap.Categories()
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	dim := snap.Dimension()
	for i, c := range cats {
		if c.Name != want[i] {
			t.Errorf("category %d = %q, want %q", i, c.Name, want[i])
		}
		items, _ := snap.Items(c.Name)
		for _, it := range items {
			if len(it.Vector) != dim {
				t.Errorf("%s vector dimension = %d, want %d", it.ID, len(it.Vector), dim)
			}
		}
	}
}

func TestLoad_FetchError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := &funcSource{name: "broken", fetch: func(context.Context) (*Document, error) {
		return nil, boom
	}}

	_, err := Load(context.Background(), src, fitFake(4))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error %v is not *LoadError", err)
	}
	if loadErr.Source != "broken" {
		t.Errorf("Source = %q", loadErr.Source)
	}
	if !errors.Is(err, boom) {
		t.Error("LoadError does not unwrap to the fetch error")
	}
}

func TestStore_SwapKeepsOldSnapshotIntact(t *testing.T) {
	first, err := New("test", smallDoc(), fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(first)

	held := store.Current()

	doc := smallDoc()
	doc.Categories = doc.Categories[:1]
	second, err := New("test", doc, fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatal(err)
	}

	if prev := store.Swap(second); prev != first {
		t.Error("Swap() did not return the previous snapshot")
	}
	if store.Current() != second {
		t.Error("Current() is not the swapped snapshot")
	}
	if !held.Has("books") || held.Len() != 3 {
		t.Error("held snapshot changed after swap")
	}
}

func TestItem_Text(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Title: "The Hobbit", Genre: "Fantasy", Description: "Fantasy adventure novel"}, "The Hobbit Fantasy Fantasy adventure novel"},
		{Item{Title: "Tetris"}, "Tetris"},
		{Item{Title: "Portal", Description: "  "}, "Portal"},
	}
	for _, tt := range tests {
		if got := tt.item.Text(); got != tt.want {
			t.Errorf("Text() = %q, want %q", got, tt.want)
		}
	}
}

func TestSnapshot_FindTitle(t *testing.T) {
	doc := smallDoc()
	doc.Categories[0].Items = append(doc.Categories[0].Items, Item{ID: "m3", Title: "beta"})
	snap, err := New("test", doc, fakeFeaturizer{dim: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		category Category
		title    string
		wantID   string
	}{
		{"movies", "Alpha", "m1"},
		{"movies", "  ALPHA ", "m1"},
		{"movies", "ｂｅｔａ", "m2"}, // first of two equal titles
		{"books", "gamma", "b1"},
		{"books", "Alpha", ""},
		{"games", "Alpha", ""},
		{"movies", "Alph", ""},
	}
	for _, tt := range tests {
		it, ok := snap.FindTitle(tt.category, tt.title)
		if tt.wantID == "" {
			if ok {
				t.Errorf("FindTitle(%s, %q) = %s, want no match", tt.category, tt.title, it.ID)
			}
			continue
		}
		if !ok || it.ID != tt.wantID {
			t.Errorf("FindTitle(%s, %q) = %v, %v, want %s", tt.category, tt.title, it, ok, tt.wantID)
		}
	}
}
