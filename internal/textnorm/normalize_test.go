package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesInput(t *testing.T) {
	terms := Normalize("SIEM Analyst TRIAGE")

	assert.Equal(t, []string{"siem", "analyst", "triage"}, terms)
}

func TestNormalize_DropsStopWords(t *testing.T) {
	terms := Normalize("the analyst and the engineer")

	assert.Equal(t, []string{"analyst", "engineer"}, terms)
}

func TestNormalize_LengthBounds(t *testing.T) {
	// "go" is below the 3-char minimum; a 26-letter run is above the max.
	long := strings.Repeat("x", 26)
	terms := Normalize("go python " + long)

	assert.Equal(t, []string{"python"}, terms)
}

func TestNormalize_BoundaryLengths(t *testing.T) {
	exactMin := "abc"
	exactMax := strings.Repeat("z", 25)
	terms := Normalize(exactMin + " " + exactMax)

	assert.Equal(t, []string{exactMin, exactMax}, terms)
}

func TestNormalize_SplitsOnNonAlphabetic(t *testing.T) {
	terms := Normalize("incident-response, threat/detection 24x7")

	assert.Equal(t, []string{"incident", "response", "threat", "detection"}, terms)
}

func TestNormalize_PreservesDuplicatesInOrder(t *testing.T) {
	terms := Normalize("splunk siem splunk")

	assert.Equal(t, []string{"splunk", "siem", "splunk"}, terms)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
}

func TestNormalize_OnlyStopWords(t *testing.T) {
	assert.Empty(t, Normalize("the and with from those"))
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "Threat detection and incident response for SOC analysts"
	assert.Equal(t, Normalize(input), Normalize(input))
}

func TestNormalizeWithOptions_CustomStopWords(t *testing.T) {
	stop := map[string]bool{"analyst": true}
	terms := NormalizeWithOptions("the analyst and engineer", Options{StopWords: stop})

	// Custom set replaces the default entirely, so "the" and "and" are
	// only dropped by the length bound here.
	assert.Equal(t, []string{"the", "and", "engineer"}, terms)
}

func TestIsValidTerm(t *testing.T) {
	assert.True(t, IsValidTerm("siem", nil))
	assert.False(t, IsValidTerm("it", nil), "below minimum length")
	assert.False(t, IsValidTerm("the", nil), "stop word")
	assert.False(t, IsValidTerm("Siem", nil), "not lower-case")
	assert.False(t, IsValidTerm("c99", nil), "non-alphabetic")
}
