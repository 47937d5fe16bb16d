// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package encoder

import (
	"fmt"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Config controls the shape and weighting of the feature space.
type Config struct {
	// HashBuckets is the number of vocabulary dimensions. While the fitted
	// vocabulary fits, every token owns a distinct dimension.
	// Default: 1024
	HashBuckets int `koanf:"hash_buckets"`

	// ConceptWeight is added to a concept axis for every keyword hit.
	// Default: 1.0
	ConceptWeight float64 `koanf:"concept_weight"`

	// TokenWeight is added to a vocabulary bucket for every known token.
	// Default: 0.5
	TokenWeight float64 `koanf:"token_weight"`
}

// DefaultConfig returns the default encoder configuration.
func DefaultConfig() Config {
	return Config{
		HashBuckets:   1024,
		ConceptWeight: 1.0,
		TokenWeight:   0.5,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.HashBuckets < 0 {
		return fmt.Errorf("encoder.hash_buckets must not be negative, got %d", c.HashBuckets)
	}
	if c.ConceptWeight <= 0 {
		return fmt.Errorf("encoder.concept_weight must be positive, got %f", c.ConceptWeight)
	}
	if c.TokenWeight < 0 {
		return fmt.Errorf("encoder.token_weight must not be negative, got %f", c.TokenWeight)
	}
	return nil
}

// Model is an encoder fitted to a catalog corpus. It is immutable after Fit
// and safe for concurrent use.
//
// The first len(concepts) dimensions are the shared concept space; the
// remaining HashBuckets dimensions hold catalog vocabulary. Each token is
// placed at its xxhash slot, probing forward past occupied slots, so two
// tokens only share a dimension once the vocabulary outgrows HashBuckets.
// Both halves are category independent, so vectors from any two categories
// are directly comparable.
type Model struct {
	cfg        Config
	concepts   []Concept
	keywords   map[string][]int
	vocabulary map[string]int
	dim        int
	baseline   []float64
}

// Fit builds a Model using lexicon (DefaultLexicon when nil) and the tokens
// found in corpus as the known vocabulary.
func Fit(cfg Config, lexicon []Concept, corpus []string) *Model {
	if lexicon == nil {
		lexicon = DefaultLexicon
	}

	m := &Model{
		cfg:        cfg,
		concepts:   lexicon,
		keywords:   make(map[string][]int),
		vocabulary: make(map[string]int),
		dim:        len(lexicon) + cfg.HashBuckets,
	}

	for idx, c := range lexicon {
		for _, kw := range c.Keywords {
			for _, tok := range Tokenize(kw) {
				if !containsInt(m.keywords[tok], idx) {
					m.keywords[tok] = append(m.keywords[tok], idx)
				}
			}
		}
	}

	if cfg.HashBuckets > 0 {
		m.assignSlots(corpus)
	}

	m.baseline = make([]float64, m.dim)
	if m.dim > 0 {
		v := 1 / math.Sqrt(float64(m.dim))
		for i := range m.baseline {
			m.baseline[i] = v
		}
	}
	return m
}

// Dimension returns D, the length of every vector produced by the model.
func (m *Model) Dimension() int {
	return m.dim
}

// VocabularySize returns the number of distinct catalog tokens known to the model.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// Baseline returns a copy of the zero-information vector.
func (m *Model) Baseline() []float64 {
	out := make([]float64, len(m.baseline))
	copy(out, m.baseline)
	return out
}

// Encode maps text into the shared feature space. The second return value
// is true when nothing in text was recognised and the baseline vector was
// returned instead. The category argument does not change the encoding:
// every category shares one space.
func (m *Model) Encode(text, _ string) ([]float64, bool) {
	vec := make([]float64, m.dim)
	known := false
	offset := len(m.concepts)

	for _, tok := range Tokenize(text) {
		if idx, ok := m.keywords[tok]; ok {
			for _, c := range idx {
				vec[c] += m.cfg.ConceptWeight
			}
			known = true
		}
		if m.cfg.HashBuckets > 0 && m.cfg.TokenWeight > 0 {
			if slot, ok := m.vocabulary[tok]; ok {
				vec[offset+slot] += m.cfg.TokenWeight
				known = true
			}
		}
	}

	if !known || !normalize(vec) {
		return m.Baseline(), true
	}
	return vec, false
}

// assignSlots gives every corpus token a vocabulary slot. Tokens are placed
// in sorted order so the layout depends only on the vocabulary.
func (m *Model) assignSlots(corpus []string) {
	seen := make(map[string]struct{})
	var tokens []string
	for _, text := range corpus {
		for _, tok := range Tokenize(text) {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				tokens = append(tokens, tok)
			}
		}
	}
	sort.Strings(tokens)

	buckets := m.cfg.HashBuckets
	used := make([]bool, buckets)
	free := buckets
	for _, tok := range tokens {
		slot := bucket(tok, buckets)
		if free == 0 {
			// Vocabulary is larger than the space; share the hashed slot.
			m.vocabulary[tok] = slot
			continue
		}
		for used[slot] {
			slot = (slot + 1) % buckets
		}
		used[slot] = true
		free--
		m.vocabulary[tok] = slot
	}
}

// VocabularySlot reports the dimension offset, relative to the vocabulary
// block, that tok encodes into.
func (m *Model) VocabularySlot(tok string) (int, bool) {
	slot, ok := m.vocabulary[tok]
	return slot, ok
}

// SharedSlots returns the number of vocabulary tokens that share a
// dimension with another token.
func (m *Model) SharedSlots() int {
	counts := make(map[int]int, len(m.vocabulary))
	for _, slot := range m.vocabulary {
		counts[slot]++
	}
	shared := 0
	for _, n := range counts {
		if n > 1 {
			shared += n
		}
	}
	return shared
}

func bucket(tok string, buckets int) int {
	return int(xxhash.Sum64String(tok) % uint64(buckets))
}

// normalize scales v to unit length in place. It reports false for a zero vector.
func normalize(v []float64) bool {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return false
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return true
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
