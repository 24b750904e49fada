// Package keywords reduces normalized document text to a ranked
// shortlist of salient terms, either by frequency or by matching a
// domain category table.
package keywords

import (
	"sort"

	"github.com/thevivhunter/resume-optimizer/internal/textnorm"
)

// DefaultTopN is the default shortlist size for frequency extraction.
const DefaultTopN = 25

// Options configures keyword extraction.
type Options struct {
	// TopN bounds the frequency shortlist; <= 0 means DefaultTopN.
	TopN int
	// StopWords overrides the normalizer's default stop-word set.
	StopWords map[string]bool
}

// Extract returns the topN most frequent terms of text, most frequent
// first. Equal-frequency terms keep their first-seen order so repeated
// runs over the same input produce the same shortlist.
func Extract(text string, topN int) []string {
	return ExtractWithOptions(text, Options{TopN: topN})
}

// ExtractWithOptions is Extract with an explicit stop-word set.
func ExtractWithOptions(text string, opts Options) []string {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	order := rank(text, opts.StopWords)
	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// rank returns every distinct term of text ordered by descending
// frequency, with first-seen order breaking ties.
func rank(text string, stop map[string]bool) []string {
	terms := textnorm.NormalizeWithOptions(text, textnorm.Options{StopWords: stop})

	counts := make(map[string]int, len(terms))
	order := make([]string, 0, len(terms))
	for _, term := range terms {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}

	// Stable sort keeps first-seen order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// Frequencies returns the per-term occurrence counts of text. Useful
// for reporting keyword density alongside the ranked shortlist.
func Frequencies(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range textnorm.Normalize(text) {
		counts[term]++
	}
	return counts
}
