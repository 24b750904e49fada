package keywords

import (
	"sort"
	"strings"
)

// OtherCategory is the bucket for salient terms that match no
// configured category and are not blacklisted.
const OtherCategory = "other"

// Categories maps category names to the terms that define them.
// Multi-word terms ("security operations") are allowed; matching is by
// substring containment in the lowered document text.
type Categories map[string][]string

// CategorizedKeywords is the result of category extraction: for each
// category, the configured terms that actually occur in the text.
// Categories with no hits are present with empty slices, never absent.
type CategorizedKeywords struct {
	ByCategory map[string][]string `json:"by_category"`
	// All is the deduplicated union of every category hit, in category
	// order then term order, used as a reference keyword set for scoring.
	All []string `json:"all"`
}

// DefaultCategories is the original cybersecurity taxonomy. Callers in
// other domains supply their own table; nothing below is consulted
// unless explicitly passed in.
func DefaultCategories() Categories {
	return Categories{
		"core_skills":      {"siem", "incident", "response", "threat", "detection", "monitoring", "vulnerability"},
		"tools":            {"splunk", "arcsight", "qradar", "sentinelone", "defender", "firewall", "ids", "ips"},
		"experience":       {"analyst", "soc", "security operations", "forensics", "malware", "triage"},
		"certifications":   {"cissp", "cisa", "cism", "security+", "ceh", "gcih", "gcia"},
		"responsibilities": {"investigation", "analysis", "reporting", "hunting", "intelligence"},
	}
}

// DefaultBlacklist lists generic words too weak to surface in the
// "other" bucket.
func DefaultBlacklist() map[string]bool {
	return map[string]bool{
		"ability": true, "background": true, "bachelor": true, "degree": true,
		"experience": true, "role": true, "job": true, "team": true,
		"work": true, "skills": true, "position": true, "candidate": true,
		"individual": true, "excellent": true, "strong": true, "good": true,
		"help": true, "support": true, "make": true, "use": true, "perform": true,
	}
}

// ExtractByCategory partitions the terms found in text into the named
// buckets of cats. A category term counts as found when it appears as a
// substring of the lowered text. Frequent terms outside every category
// land in the OtherCategory bucket unless blacklisted, capped at otherN
// (DefaultTopN when otherN <= 0).
func ExtractByCategory(text string, cats Categories, blacklist map[string]bool, otherN int) CategorizedKeywords {
	return ExtractByCategoryWithOptions(text, cats, blacklist, Options{TopN: otherN})
}

// ExtractByCategoryWithOptions is ExtractByCategory with an explicit
// stop-word set for the OtherCategory ranking; opts.TopN caps that
// bucket.
func ExtractByCategoryWithOptions(text string, cats Categories, blacklist map[string]bool, opts Options) CategorizedKeywords {
	otherN := opts.TopN
	if otherN <= 0 {
		otherN = DefaultTopN
	}
	lower := strings.ToLower(text)

	result := CategorizedKeywords{ByCategory: make(map[string][]string, len(cats)+1)}
	seen := make(map[string]bool)

	// Deterministic category walk: bucket names sorted, term order as
	// configured within each bucket.
	names := make([]string, 0, len(cats))
	for name := range cats {
		names = append(names, name)
	}
	sort.Strings(names)

	claimed := make(map[string]bool)
	for _, name := range names {
		found := []string{}
		for _, term := range cats[name] {
			t := strings.ToLower(term)
			claimed[t] = true
			if strings.Contains(lower, t) {
				found = append(found, t)
				if !seen[t] {
					seen[t] = true
					result.All = append(result.All, t)
				}
			}
		}
		result.ByCategory[name] = found
	}

	// Remaining salient terms by frequency, minus category terms and
	// blacklisted words.
	other := []string{}
	for _, term := range rank(text, opts.StopWords) {
		if claimed[term] || blacklist[term] {
			continue
		}
		other = append(other, term)
		if len(other) >= otherN {
			break
		}
	}
	result.ByCategory[OtherCategory] = other

	return result
}
