// Package scoring computes keyword overlap between a reference keyword
// set and a target document.
package scoring

import "strings"

// Document is an immutable analysis target: an identifier plus the
// already lower-cased text to match keywords against.
type Document struct {
	ID   string
	Text string
}

// NewDocument builds a Document, lower-casing text once so repeated
// scoring runs don't re-fold it.
func NewDocument(id, text string) Document {
	return Document{ID: id, Text: strings.ToLower(text)}
}

// MatchResult partitions a reference keyword set by presence in a
// target document. Present and Missing preserve reference order and
// are always non-nil; together they cover the full reference set.
type MatchResult struct {
	// Score is the percentage of reference keywords found, in [0,100],
	// rounded to one decimal. Zero when the reference set is empty.
	Score   float64  `json:"score"`
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// Score checks each reference keyword for substring containment in the
// document text. Containment lets "incident response" match as a phrase
// and "sql" match "mysql"; short keywords can also match unintended
// text ("log" inside "catalog").
//
// An empty reference set is a valid degenerate case: score 0 with empty
// partitions, not an error.
func Score(ref []string, doc Document) MatchResult {
	result := MatchResult{Present: []string{}, Missing: []string{}}

	for _, kw := range ref {
		if strings.Contains(doc.Text, strings.ToLower(kw)) {
			result.Present = append(result.Present, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	if len(ref) > 0 {
		result.Score = round1(100 * float64(len(result.Present)) / float64(len(ref)))
	}
	return result
}

// round1 rounds a non-negative value to one decimal place.
func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
