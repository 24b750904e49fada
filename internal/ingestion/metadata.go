package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thevivhunter/resume-optimizer/internal/fetch"
)

// Metadata describes an ingested job posting.
type Metadata struct {
	URL       string         `json:"url,omitempty"`
	Timestamp string         `json:"timestamp"` // RFC3339
	Hash      string         `json:"hash"`      // sha256 of the cleaned text
	Platform  fetch.Platform `json:"platform,omitempty"`
	Browser   bool           `json:"browser,omitempty"` // rendered via headless browser
}

// NewMetadata stamps cleaned content with the current time and a
// content hash, so re-analyses of the same posting are identifiable.
func NewMetadata(content, url string) *Metadata {
	sum := sha256.Sum256([]byte(content))
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(sum[:]),
	}
}

// ToJSON marshals the metadata pretty-printed.
func (m *Metadata) ToJSON() ([]byte, error) {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return raw, nil
}
