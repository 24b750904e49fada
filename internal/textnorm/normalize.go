// Package textnorm turns raw document text into a normalized sequence of
// candidate terms for keyword extraction and scoring.
package textnorm

import (
	"strings"
	"unicode"
)

// Term length bounds. Runs of letters shorter than MinTermLen carry
// little signal ("a", "of" fragments); runs longer than MaxTermLen are
// almost always extraction garbage (glued words from PDF text layers).
const (
	MinTermLen = 3
	MaxTermLen = 25
)

// Options configures normalization. The zero value uses the defaults.
type Options struct {
	// StopWords overrides DefaultStopWords when non-nil.
	StopWords map[string]bool
}

// Normalize tokenizes text into lower-cased terms: runs of alphabetic
// characters with length in [MinTermLen, MaxTermLen], with stop words
// removed. Duplicates are preserved so callers can count frequency.
// Deterministic for identical input and stop-word set; no stemming.
func Normalize(text string) []string {
	return NormalizeWithOptions(text, Options{})
}

// NormalizeWithOptions is Normalize with an explicit stop-word set.
func NormalizeWithOptions(text string, opts Options) []string {
	stop := opts.StopWords
	if stop == nil {
		stop = DefaultStopWords
	}

	var terms []string
	var run strings.Builder
	runLen := 0

	flush := func() {
		if runLen >= MinTermLen && runLen <= MaxTermLen {
			w := run.String()
			if !stop[w] {
				terms = append(terms, w)
			}
		}
		run.Reset()
		runLen = 0
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			run.WriteRune(unicode.ToLower(r))
			runLen++
		} else {
			flush()
		}
	}
	flush()

	return terms
}

// IsValidTerm reports whether s is a well-formed normalized term:
// lower-case alphabetic, length within bounds, not a stop word.
func IsValidTerm(s string, stop map[string]bool) bool {
	if stop == nil {
		stop = DefaultStopWords
	}
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) || unicode.IsUpper(r) {
			return false
		}
		n++
	}
	return n >= MinTermLen && n <= MaxTermLen && !stop[s]
}
