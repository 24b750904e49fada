// Package ingestion acquires job posting text from files or URLs and
// normalizes it for analysis. Failure to obtain text is reported as
// ErrSourceUnavailable; analysis must not proceed without a source.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrSourceUnavailable wraps every failure to obtain job text.
var ErrSourceUnavailable = errors.New("job text source unavailable")

var (
	spaceRe = regexp.MustCompile(`[ \t]+`)
	blankRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes posting text: CRLF to LF, runs of spaces and
// tabs collapsed, at most one blank line between paragraphs, trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
	}
	content = strings.Join(lines, "\n")
	content = blankRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// FromFile reads a job posting from a local text file.
func FromFile(path string) (string, *Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to read job file %s: %w", ErrSourceUnavailable, path, err)
	}

	cleaned := CleanText(string(raw))
	return cleaned, NewMetadata(cleaned, ""), nil
}
