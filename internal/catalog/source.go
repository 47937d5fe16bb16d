// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Source supplies raw catalog documents.
type Source interface {
	// Name identifies the source in logs, metrics and errors.
	Name() string

	// Fetch reads the full catalog. It is called at startup and on every reload.
	Fetch(ctx context.Context) (*Document, error)
}

// FileSource reads a catalog from disk.
//
// Path may be a single JSON file mapping category names to item arrays:
//
//	{"books": [{"id": "book_1", "title": "The Hobbit", ...}], "movies": [...]}
//
// or a directory holding one <category>.json array per category. Categories
// are ordered by name. When Fallback is set, categories it provides that are
// missing on disk are appended after the file categories.
type FileSource struct {
	Path     string
	Fallback Source
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) (*Document, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog path: %w", err)
	}

	var doc *Document
	if info.IsDir() {
		doc, err = s.fetchDir(ctx)
	} else {
		doc, err = s.fetchFile()
	}
	if err != nil {
		return nil, err
	}

	if s.Fallback != nil {
		if err := s.fillFromFallback(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *FileSource) fetchFile() (*Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raw map[string][]Item
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", s.Path, err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &Document{Categories: make([]CategoryItems, 0, len(names))}
	for _, name := range names {
		doc.Categories = append(doc.Categories, CategoryItems{Name: Category(name), Items: raw[name]})
	}
	return doc, nil
}

func (s *FileSource) fetchDir(ctx context.Context) (*Document, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename.
	doc := &Document{}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(s.Path, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var items []Item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}

		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		doc.Categories = append(doc.Categories, CategoryItems{Name: Category(strings.ToLower(name)), Items: items})
	}

	if len(doc.Categories) == 0 && s.Fallback == nil {
		return nil, fmt.Errorf("no .json catalog files in %s: %w", s.Path, fs.ErrNotExist)
	}
	return doc, nil
}

func (s *FileSource) fillFromFallback(ctx context.Context, doc *Document) error {
	fallback, err := s.Fallback.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch fallback %s: %w", s.Fallback.Name(), err)
	}

	present := make(map[Category]struct{}, len(doc.Categories))
	for _, c := range doc.Categories {
		present[c.Name] = struct{}{}
	}
	for _, c := range fallback.Categories {
		if _, ok := present[c.Name]; !ok {
			doc.Categories = append(doc.Categories, c)
		}
	}
	return nil
}
