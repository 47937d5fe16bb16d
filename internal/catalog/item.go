// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import "strings"

// Category names a content domain such as books or movies.
type Category string

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Item is a single recommendable entity within one category.
type Item struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Genre       string         `json:"genre,omitempty"`
	Year        *int           `json:"year,omitempty"`
	Rating      *float64       `json:"rating,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`

	// Vector is optional in source documents. Missing vectors are computed
	// from Text() when the snapshot is built.
	Vector []float64 `json:"vector,omitempty"`

	// Category and Position are assigned by the snapshot.
	Category Category `json:"-"`
	Position int      `json:"-"`
}

// Text returns the text used to derive the item's feature vector:
// title, genre and description joined by spaces.
func (it *Item) Text() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{it.Title, it.Genre, it.Description} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// CategoryItems is the raw, ordered item list of one category as read from a Source.
type CategoryItems struct {
	Name  Category `json:"name"`
	Items []Item   `json:"items"`
}

// Document is everything a Source returns: the categories in catalog order.
type Document struct {
	Categories []CategoryItems `json:"categories"`
}

// corpus returns the text of every item across all categories.
func (d *Document) corpus() []string {
	var out []string
	for i := range d.Categories {
		for j := range d.Categories[i].Items {
			out = append(out, d.Categories[i].Items[j].Text())
		}
	}
	return out
}
