package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	got := CleanText("Line 1\r\nLine 2\rLine 3")

	assert.NotContains(t, got, "\r")
	assert.Equal(t, "Line 1\nLine 2\nLine 3", got)
}

func TestCleanText_CollapsesSpaces(t *testing.T) {
	got := CleanText("SOC   analyst \t role")

	assert.Equal(t, "SOC analyst role", got)
}

func TestCleanText_SqueezesBlankLines(t *testing.T) {
	got := CleanText("Duties\n\n\n\n\nRequirements")

	assert.Equal(t, "Duties\n\nRequirements", got)
}

func TestCleanText_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n \t \n"))
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Threat   detection\r\n\r\n\r\nIncident  response"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestFromFile_ReadsAndCleans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("SIEM   analyst\r\nrole"), 0o644))

	text, meta, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "SIEM analyst\nrole", text)
	require.NotNil(t, meta)
	assert.NotEmpty(t, meta.Hash)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestFromFile_MissingFileIsSourceUnavailable(t *testing.T) {
	_, _, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))

	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestNewMetadata_HashIsStable(t *testing.T) {
	a := NewMetadata("same content", "")
	b := NewMetadata("same content", "")
	c := NewMetadata("different content", "")

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
}
