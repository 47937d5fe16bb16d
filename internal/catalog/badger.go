// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Key layout:
//
//	cat/<seq>              -> category name, in catalog order
//	item/<category>/<seq>  -> JSON item, in insertion order
//
// Sequence numbers are zero padded so lexicographic key order is insertion order.
const (
	prefixCategory = "cat/"
	prefixItem     = "item/"
)

// BadgerSource persists the catalog in BadgerDB.
type BadgerSource struct {
	db     *badger.DB
	path   string
	logger zerolog.Logger
}

// OpenBadger opens (or creates) a catalog database at path. An empty path
// opens an in-memory database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func OpenBadger(path string, logger zerolog.Logger) (*BadgerSource, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logger = logger.With().Str("component", "catalog-badger").Logger()
	logger.Info().Str("path", path).Bool("in_memory", path == "").Msg("catalog database opened")

	return &BadgerSource{db: db, path: path, logger: logger}, nil
}

// Name implements Source.
func (s *BadgerSource) Name() string {
	if s.path == "" {
		return "badger:memory"
	}
	return "badger:" + s.path
}

// Empty reports whether the database holds no categories.
func (s *BadgerSource) Empty() (bool, error) {
	empty := true
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(prefixCategory)
		it.Seek(prefix)
		empty = !it.ValidForPrefix(prefix)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("check catalog database: %w", err)
	}
	return empty, nil
}

// Import replaces the stored catalog with doc. Existing categories and items
// are dropped first.
func (s *BadgerSource) Import(ctx context.Context, doc *Document) error {
	if doc == nil || len(doc.Categories) == 0 {
		return ErrNoCategories
	}

	if err := s.clear(); err != nil {
		return fmt.Errorf("drop existing catalog: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	total := 0
	for ci, cat := range doc.Categories {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := wb.Set(categoryKey(ci), []byte(cat.Name)); err != nil {
			return fmt.Errorf("write category %q: %w", cat.Name, err)
		}
		for ii := range cat.Items {
			data, err := json.Marshal(&cat.Items[ii])
			if err != nil {
				return fmt.Errorf("encode item %q: %w", cat.Items[ii].ID, err)
			}
			if err := wb.Set(itemKey(cat.Name, ii), data); err != nil {
				return fmt.Errorf("write item %q: %w", cat.Items[ii].ID, err)
			}
			total++
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush catalog import: %w", err)
	}

	s.logger.Info().
		Int("categories", len(doc.Categories)).
		Int("items", total).
		Msg("catalog imported")
	return nil
}

// clear deletes every category and item key.
func (s *BadgerSource) clear() error {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for _, prefix := range [][]byte{[]byte(prefixCategory), []byte(prefixItem)} {
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				keys = append(keys, it.Item().KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil || len(keys) == 0 {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// Fetch implements Source.
func (s *BadgerSource) Fetch(ctx context.Context) (*Document, error) {
	doc := &Document{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		catPrefix := []byte(prefixCategory)
		for it.Seek(catPrefix); it.ValidForPrefix(catPrefix); it.Next() {
			name, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read category key %s: %w", it.Item().Key(), err)
			}
			doc.Categories = append(doc.Categories, CategoryItems{Name: Category(name)})
		}

		for i := range doc.Categories {
			prefix := []byte(prefixItem + string(doc.Categories[i].Name) + "/")
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				var item Item
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &item)
				})
				if err != nil {
					return fmt.Errorf("decode item %s: %w", it.Item().Key(), err)
				}
				doc.Categories[i].Items = append(doc.Categories[i].Items, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	return doc, nil
}

// Close closes the database.
func (s *BadgerSource) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	return nil
}

func categoryKey(seq int) []byte {
	return []byte(fmt.Sprintf("%s%06d", prefixCategory, seq))
}

func itemKey(c Category, seq int) []byte {
	return []byte(fmt.Sprintf("%s%s/%08d", prefixItem, c, seq))
}
