// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package similarity scores a preference vector against a candidate item
// vector. Scoring never depends on which categories the two vectors came
// from; swapping source and target only changes which items are scanned.
package similarity

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned for malformed candidate vectors. Callers skip the
// candidate rather than failing the whole request.
var (
	ErrEmptyVector       = errors.New("empty vector")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrZeroVector        = errors.New("zero-length vector")
	ErrNonFinite         = errors.New("vector contains NaN or Inf")
)

// Cosine returns the cosine similarity of a and b in [-1, 1].
func Cosine(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if math.IsNaN(dot) || math.IsInf(dot, 0) || math.IsNaN(normA+normB) || math.IsInf(normA+normB, 0) {
		return 0, ErrNonFinite
	}
	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Rounding can push |cos| a hair past 1.
	return math.Max(-1, math.Min(1, cos)), nil
}

// Clamp maps a cosine onto a score in [0, 1]. Negative cosines, which only
// arise from supplied vectors with negative components, score 0. Encoder
// vectors are non-negative, so a pair sharing no feature scores exactly 0.
func Clamp(cos float64) float64 {
	if math.IsNaN(cos) {
		return 0
	}
	return math.Max(0, math.Min(1, cos))
}

// Score is the similarity score between a preference vector and an item
// vector: cosine clamped to [0, 1]. The result is never NaN or negative.
func Score(pref, item []float64) (float64, error) {
	cos, err := Cosine(pref, item)
	if err != nil {
		return 0, err
	}
	return Clamp(cos), nil
}

// Cosine01 is the default scorer. It has no state and is safe for
// concurrent use by any number of goroutines.
type Cosine01 struct{}

// Score implements the scorer interface used by the ranking engine.
func (Cosine01) Score(pref, item []float64) (float64, error) {
	return Score(pref, item)
}
