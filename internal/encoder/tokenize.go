// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package encoder

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "i": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "like": {}, "me": {}, "my": {}, "of": {}, "on": {},
	"or": {}, "so": {}, "that": {}, "the": {}, "their": {}, "them": {}, "this": {},
	"to": {}, "too": {}, "very": {}, "was": {}, "we": {}, "with": {}, "you": {},
	"about": {}, "all": {}, "any": {}, "some": {}, "really": {}, "stuff": {}, "thing": {},
	"movie": {}, "movies": {}, "film": {}, "films": {}, "book": {}, "books": {},
	"song": {}, "songs": {}, "game": {}, "games": {}, "video": {}, "new": {},
}

// Tokenize normalizes text (NFKC, Unicode case folding) and splits it into
// word tokens. Hyphens and apostrophes inside a word join its parts
// ("sci-fi" becomes "scifi"), stop words and single runes are dropped and a
// trailing plural "s" is trimmed. The output is a pure function of text.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	// cases.Caser is stateful and must not be shared between goroutines.
	folded := cases.Fold().String(norm.NFKC.String(text))

	var (
		tokens []string
		cur    strings.Builder
	)
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tok := normalizeToken(cur.String())
		cur.Reset()
		if tok == "" {
			return
		}
		if _, stop := stopWords[tok]; stop {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r):
			cur.WriteRune(r)
		case isJoiner(r) && cur.Len() > 0:
			// joined into the current word
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func isJoiner(r rune) bool {
	return r == '-' || r == '\'' || r == '’' || r == '‐' || r == '‑'
}

func normalizeToken(tok string) string {
	if len([]rune(tok)) < 2 {
		return ""
	}
	if len(tok) > 3 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") &&
		!strings.HasSuffix(tok, "us") && !strings.HasSuffix(tok, "is") {
		return tok[:len(tok)-1]
	}
	return tok
}
