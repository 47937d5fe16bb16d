// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package similarity

import (
	"errors"
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a, b []float64
		want float64
	}{
		"identical":       {a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, want: 1},
		"scaled":          {a: []float64{1, 2, 3}, b: []float64{2, 4, 6}, want: 1},
		"orthogonal":      {a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		"opposite":        {a: []float64{1, 0}, b: []float64{-1, 0}, want: 0},
		"partial overlap": {a: []float64{1, 1}, b: []float64{1, 0}, want: 1 / math.Sqrt2},
		"no shared axis":  {a: []float64{0, 0.5, 0.5, 0}, b: []float64{1, 0, 0, 1}, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Score(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestScore_Symmetric(t *testing.T) {
	t.Parallel()

	a := []float64{0.3, 0.1, 0.9, 0}
	b := []float64{0.5, 0.5, 0.1, 0.2}
	ab, _ := Score(a, b)
	ba, _ := Score(b, a)
	if ab != ba {
		t.Errorf("Score(a, b) = %f, Score(b, a) = %f", ab, ba)
	}
}

func TestScore_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a, b []float64
		want error
	}{
		"empty":     {a: nil, b: []float64{1}, want: ErrEmptyVector},
		"mismatch":  {a: []float64{1, 2}, b: []float64{1, 2, 3}, want: ErrDimensionMismatch},
		"zero item": {a: []float64{1, 2}, b: []float64{0, 0}, want: ErrZeroVector},
		"nan":       {a: []float64{1, 2}, b: []float64{math.NaN(), 1}, want: ErrNonFinite},
		"inf":       {a: []float64{1, 2}, b: []float64{math.Inf(1), 1}, want: ErrNonFinite},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := Score(tt.a, tt.b); !errors.Is(err, tt.want) {
				t.Errorf("Score() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClamp_Bounds(t *testing.T) {
	t.Parallel()

	for _, cos := range []float64{-1.0000001, -1, -0.5, 0, 0.5, 1, 1.0000001, math.NaN()} {
		got := Clamp(cos)
		if math.IsNaN(got) || got < 0 || got > 1 {
			t.Errorf("Clamp(%v) = %v, want value in [0,1]", cos, got)
		}
	}
}
