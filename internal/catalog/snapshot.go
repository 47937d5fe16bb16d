// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Featurizer maps text into the shared feature space. The encoder package's
// *Model satisfies it.
type Featurizer interface {
	Dimension() int
	Encode(text, category string) ([]float64, bool)
}

// FitFunc builds a Featurizer from the text of every catalog item.
type FitFunc func(corpus []string) Featurizer

// CategoryInfo describes one category of a snapshot.
type CategoryInfo struct {
	Name        Category `json:"name"`
	DisplayName string   `json:"display_name"`
	ItemCount   int      `json:"item_count"`
}

// versionSeq numbers snapshots process-wide so a reload never reuses a version.
var versionSeq atomic.Uint64

// Snapshot is an immutable catalog version. Items and vectors must not be
// modified by callers.
type Snapshot struct {
	source     string
	categories []CategoryInfo
	items      map[Category][]Item
	titles     map[Category]map[string]int
	featurizer Featurizer
	version    uint64
	loadedAt   time.Time
	total      int
	digest     uint64
}

// New validates doc and builds a snapshot, computing missing item vectors with f.
// Category names are trimmed and lower-cased.
// It fails with *LoadError if a category is empty, duplicated or unnamed, an item
// has no id or title, an id repeats within its category, or a supplied vector
// does not have f.Dimension() components.
func New(source string, doc *Document, f Featurizer) (*Snapshot, error) {
	if doc == nil || len(doc.Categories) == 0 {
		return nil, &LoadError{Source: source, Err: ErrNoCategories}
	}

	dim := f.Dimension()
	if dim <= 0 {
		return nil, &LoadError{Source: source, Reason: "featurizer has no dimensions"}
	}

	title := cases.Title(language.English)
	h := xxhash.New()
	snap := &Snapshot{
		source:     source,
		categories: make([]CategoryInfo, 0, len(doc.Categories)),
		items:      make(map[Category][]Item, len(doc.Categories)),
		titles:     make(map[Category]map[string]int, len(doc.Categories)),
		featurizer: f,
		loadedAt:   time.Now(),
	}

	for _, cat := range doc.Categories {
		name := Category(strings.ToLower(strings.TrimSpace(string(cat.Name))))
		if name == "" {
			return nil, &LoadError{Source: source, Reason: "category without a name"}
		}
		if _, dup := snap.items[name]; dup {
			return nil, &LoadError{Source: source, Category: name, Reason: "duplicate category"}
		}
		if len(cat.Items) == 0 {
			return nil, &LoadError{Source: source, Category: name, Reason: "category has zero items"}
		}

		items := make([]Item, len(cat.Items))
		titles := make(map[string]int, len(cat.Items))
		seen := make(map[string]struct{}, len(cat.Items))
		for i := range cat.Items {
			it := cat.Items[i]
			it.ID = strings.TrimSpace(it.ID)
			if it.ID == "" {
				return nil, &LoadError{Source: source, Category: name, Reason: "item at position " + strconv.Itoa(i) + " has no id"}
			}
			if strings.TrimSpace(it.Title) == "" {
				return nil, &LoadError{Source: source, Category: name, ItemID: it.ID, Reason: "item has no title"}
			}
			if _, dup := seen[it.ID]; dup {
				return nil, &LoadError{Source: source, Category: name, ItemID: it.ID, Reason: "duplicate item id"}
			}
			seen[it.ID] = struct{}{}

			switch {
			case it.Vector == nil:
				it.Vector, _ = f.Encode(it.Text(), string(name))
			case len(it.Vector) != dim:
				return nil, &LoadError{
					Source:   source,
					Category: name,
					ItemID:   it.ID,
					Reason:   "vector has " + strconv.Itoa(len(it.Vector)) + " dimensions, want " + strconv.Itoa(dim),
				}
			}

			it.Category = name
			it.Position = i
			items[i] = it
			if key := titleKey(it.Title); key != "" {
				if _, dup := titles[key]; !dup {
					titles[key] = i
				}
			}

			data, err := json.Marshal(&it)
			if err != nil {
				return nil, &LoadError{Source: source, Category: name, ItemID: it.ID, Err: err}
			}
			_, _ = h.WriteString(string(name))
			_, _ = h.Write(data)
		}

		snap.items[name] = items
		snap.titles[name] = titles
		snap.categories = append(snap.categories, CategoryInfo{
			Name:        name,
			DisplayName: title.String(string(name)),
			ItemCount:   len(items),
		})
		snap.total += len(items)
	}

	snap.digest = h.Sum64()
	snap.version = versionSeq.Add(1)
	return snap, nil
}

// FindTitle returns the item of category c whose title matches title,
// ignoring case, Unicode width and surrounding or repeated whitespace.
// When several items share a title the first in catalog order wins.
func (s *Snapshot) FindTitle(c Category, title string) (*Item, bool) {
	idx, ok := s.titles[c][titleKey(title)]
	if !ok {
		return nil, false
	}
	return &s.items[c][idx], true
}

func titleKey(title string) string {
	return cases.Fold().String(norm.NFKC.String(strings.Join(strings.Fields(title), " ")))
}

// Items returns the items of a category in catalog order.
func (s *Snapshot) Items(c Category) ([]Item, bool) {
	items, ok := s.items[c]
	return items, ok
}

// Has reports whether the snapshot contains category c.
func (s *Snapshot) Has(c Category) bool {
	_, ok := s.items[c]
	return ok
}

// Categories returns the categories in catalog order.
func (s *Snapshot) Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(s.categories))
	copy(out, s.categories)
	return out
}

// Featurizer returns the encoder the item vectors were computed with.
// Preference text must be encoded with the same featurizer.
func (s *Snapshot) Featurizer() Featurizer {
	return s.featurizer
}

// Dimension returns D, the length of every item vector.
func (s *Snapshot) Dimension() int {
	return s.featurizer.Dimension()
}

// Version returns the snapshot's process-unique version.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Source returns the name of the source the snapshot was loaded from.
func (s *Snapshot) Source() string {
	return s.source
}

// Digest returns a content hash of the snapshot's categories and items.
// Two snapshots with equal digests serve identical results.
func (s *Snapshot) Digest() uint64 {
	return s.digest
}

// Len returns the total number of items across all categories.
func (s *Snapshot) Len() int {
	return s.total
}

// counts returns items per category, for metrics.
func (s *Snapshot) counts() map[string]int {
	out := make(map[string]int, len(s.categories))
	for _, c := range s.categories {
		out[string(c.Name)] = c.ItemCount
	}
	return out
}
