// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package encoder maps free-text preferences and catalog item text into one
// fixed-dimension feature space shared by every category.
//
// # Feature Space
//
// A vector has D = len(lexicon) + HashBuckets dimensions:
//
//	[ concept axes (fantasy, science_fiction, romance, ...) | catalog vocabulary slots ]
//
// Concept axes carry cross-domain meaning: "dragons" in a book preference and
// "Epic fantasy RPG" on a game both light up the fantasy axis. The vocabulary
// half captures exact title words ("minecraft") that the lexicon does not
// know about, as long as some catalog item mentions them. Every fitted token
// owns its slot until the vocabulary outgrows HashBuckets, so texts with no
// shared token or concept are orthogonal.
//
// # Determinism
//
// Encode is a pure function of its input and the fitted Model: identical text
// always yields an identical vector. Text that contains no known token yields
// the baseline vector (uniform, unit length) and reports the fallback to the
// caller instead of failing.
package encoder
