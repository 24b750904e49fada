package analysis

import (
	"encoding/json"
	"fmt"
)

// marshalReport serializes a report with non-nil slices so consumers
// always see arrays, never null.
func marshalReport(report *Report) ([]byte, error) {
	normalized := *report
	if normalized.Present == nil {
		normalized.Present = []string{}
	}
	if normalized.Missing == nil {
		normalized.Missing = []string{}
	}
	if normalized.Keywords == nil {
		normalized.Keywords = []string{}
	}
	if normalized.Suggestions == nil {
		normalized.Suggestions = []string{}
	}

	data, err := json.MarshalIndent(&normalized, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report failed: %w", err)
	}
	return data, nil
}

// ToJSON returns the report as indented JSON.
func (r *Report) ToJSON() (string, error) {
	data, err := marshalReport(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
