package keywords

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_RanksByFrequency(t *testing.T) {
	text := "splunk splunk splunk siem siem analyst"
	got := Extract(text, 10)

	assert.Equal(t, []string{"splunk", "siem", "analyst"}, got)
}

func TestExtract_TiesKeepFirstSeenOrder(t *testing.T) {
	text := "SIEM incident response triage analyst"
	got := Extract(text, 10)

	// All frequencies are 1, so the shortlist must follow encounter order.
	assert.Equal(t, []string{"siem", "incident", "response", "triage", "analyst"}, got)
}

func TestExtract_BoundsToTopN(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "term%s ", strings.Repeat("x", i%7+1))
	}
	got := Extract(sb.String(), 3)

	assert.Len(t, got, 3)
}

func TestExtract_DefaultTopN(t *testing.T) {
	words := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		words = append(words, fmt.Sprintf("kw%c%c", 'a'+i/26, 'a'+i%26))
	}
	got := Extract(strings.Join(words, " "), 0)

	assert.Len(t, got, DefaultTopN)
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, Extract("", 25))
}

func TestExtract_OnlyStopWords(t *testing.T) {
	assert.Empty(t, Extract("the and of with这", 25))
}

func TestExtract_Idempotent(t *testing.T) {
	text := "threat detection threat hunting incident response detection"
	first := Extract(text, 25)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(text, 25))
	}
}

func TestFrequencies(t *testing.T) {
	freq := Frequencies("siem siem analyst")

	assert.Equal(t, 2, freq["siem"])
	assert.Equal(t, 1, freq["analyst"])
}

func TestExtractByCategory_PartitionsIntoBuckets(t *testing.T) {
	text := "SOC analyst with Splunk and SIEM experience, CISSP preferred"
	got := ExtractByCategory(text, DefaultCategories(), DefaultBlacklist(), 10)

	assert.Contains(t, got.ByCategory["tools"], "splunk")
	assert.Contains(t, got.ByCategory["core_skills"], "siem")
	assert.Contains(t, got.ByCategory["experience"], "analyst")
	assert.Contains(t, got.ByCategory["certifications"], "cissp")
}

func TestExtractByCategory_MultiWordTermMatches(t *testing.T) {
	text := "Background in security operations required"
	got := ExtractByCategory(text, DefaultCategories(), DefaultBlacklist(), 10)

	assert.Contains(t, got.ByCategory["experience"], "security operations")
}

func TestExtractByCategory_EmptyBucketsPresent(t *testing.T) {
	got := ExtractByCategory("plain unrelated prose", DefaultCategories(), DefaultBlacklist(), 10)

	for name := range DefaultCategories() {
		_, ok := got.ByCategory[name]
		assert.True(t, ok, "bucket %q should exist even when empty", name)
	}
}

func TestExtractByCategory_OtherBucketExcludesBlacklist(t *testing.T) {
	text := "excellent kubernetes excellent kubernetes terraform"
	got := ExtractByCategory(text, DefaultCategories(), DefaultBlacklist(), 10)

	other := got.ByCategory[OtherCategory]
	assert.Contains(t, other, "kubernetes")
	assert.Contains(t, other, "terraform")
	assert.NotContains(t, other, "excellent")
}

func TestExtractByCategoryWithOptions_StopWordsApplyToOtherBucket(t *testing.T) {
	text := "kubernetes kubernetes kubernetes terraform terraform ansible"
	stop := map[string]bool{"kubernetes": true}

	got := ExtractByCategoryWithOptions(text, DefaultCategories(), nil, Options{StopWords: stop})

	other := got.ByCategory[OtherCategory]
	assert.NotContains(t, other, "kubernetes")
	assert.Contains(t, other, "terraform")
}

func TestExtractByCategory_AllIsDeduplicated(t *testing.T) {
	cats := Categories{
		"a": {"siem", "triage"},
		"b": {"siem"}, // same term in two buckets
	}
	got := ExtractByCategory("siem triage", cats, nil, 5)

	require.NotEmpty(t, got.All)
	seen := map[string]int{}
	for _, term := range got.All {
		seen[term]++
	}
	assert.Equal(t, 1, seen["siem"])
}
