package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_SOCScenario(t *testing.T) {
	// Job: "SIEM incident response triage analyst"; resume mentions
	// only siem and analyst.
	ref := []string{"siem", "incident", "response", "triage", "analyst"}
	doc := NewDocument("resume", "Experienced SIEM operator and security analyst")

	got := Score(ref, doc)

	assert.Equal(t, 40.0, got.Score)
	assert.Equal(t, []string{"siem", "analyst"}, got.Present)
	assert.Equal(t, []string{"incident", "response", "triage"}, got.Missing)
}

func TestScore_PartitionCoversReferenceSet(t *testing.T) {
	ref := []string{"threat", "detection", "splunk", "forensics", "kubernetes"}
	doc := NewDocument("resume", "threat detection with splunk")

	got := Score(ref, doc)

	assert.Equal(t, len(ref), len(got.Present)+len(got.Missing))
}

func TestScore_SubstringContainment(t *testing.T) {
	// Containment is by substring, not token equality: "log" is found
	// inside "catalog". Preserved behavior, see Score doc comment.
	got := Score([]string{"log"}, NewDocument("d", "maintained the product catalog"))

	assert.Equal(t, []string{"log"}, got.Present)
	assert.Equal(t, 100.0, got.Score)
}

func TestScore_EmptyReferenceSet(t *testing.T) {
	got := Score(nil, NewDocument("d", "some resume text"))

	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.Present)
	assert.Empty(t, got.Missing)
	require.NotNil(t, got.Present, "partitions are empty slices, not nil")
	require.NotNil(t, got.Missing)
}

func TestScore_EmptyDocument(t *testing.T) {
	got := Score([]string{"siem", "triage"}, NewDocument("d", ""))

	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.Present)
	assert.Equal(t, []string{"siem", "triage"}, got.Missing)
}

func TestScore_PreservesReferenceOrder(t *testing.T) {
	ref := []string{"zeta", "alpha", "mu"}
	doc := NewDocument("d", "alpha zeta mu")

	got := Score(ref, doc)

	assert.Equal(t, ref, got.Present)
}

func TestScore_RoundsToOneDecimal(t *testing.T) {
	// 1 of 3 present: 33.333... rounds to 33.3.
	got := Score([]string{"splunk", "qradar", "arcsight"}, NewDocument("d", "splunk admin"))

	assert.Equal(t, 33.3, got.Score)
}

func TestScore_MonotonicUnderPresentAddition(t *testing.T) {
	doc := NewDocument("d", "siem splunk analyst triage")
	base := []string{"siem", "qradar"}

	before := Score(base, doc)
	after := Score(append(base, "splunk"), doc)

	assert.GreaterOrEqual(t, after.Score, before.Score,
		"adding a present keyword must not lower the score")
}

func TestScore_Deterministic(t *testing.T) {
	ref := []string{"threat", "hunting", "intelligence"}
	doc := NewDocument("d", "threat intelligence platform work")

	first := Score(ref, doc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(ref, doc))
	}
}

func TestScore_CaseInsensitiveKeywords(t *testing.T) {
	got := Score([]string{"Splunk"}, NewDocument("d", "SPLUNK enterprise security"))

	assert.Equal(t, []string{"Splunk"}, got.Present)
}
