// Package advice turns a match score and missing-keyword list into
// human-readable suggestions using a configurable rule table.
package advice

import (
	"fmt"
	"strings"
)

// Suggest evaluates rules against score and missing, in table order.
// Exactly one score band fires; every matching keyword hint fires; the
// bulk hint fires once when any missing term matches its substring
// list. Pure function of its inputs.
func Suggest(score float64, missing []string, rules RuleSet) []string {
	suggestions := []string{}

	for _, band := range rules.Bands {
		if band.Below <= 0 || score < band.Below {
			suggestions = append(suggestions, band.Message)
			break
		}
	}

	missingSet := make(map[string]bool, len(missing))
	for _, term := range missing {
		missingSet[strings.ToLower(term)] = true
	}

	for _, hint := range rules.Hints {
		for _, term := range hint.Any {
			if missingSet[strings.ToLower(term)] {
				suggestions = append(suggestions, hint.Message)
				break
			}
		}
	}

	if rules.Bulk != nil {
		if grouped := collectBulk(missing, rules.Bulk); len(grouped) > 0 {
			suggestions = append(suggestions,
				fmt.Sprintf("%s'%s'", rules.Bulk.Prefix, strings.Join(grouped, ", ")))
		}
	}

	return suggestions
}

// collectBulk returns missing terms containing any bulk substring,
// preserving missing order, capped at bulk.Cap.
func collectBulk(missing []string, bulk *BulkHint) []string {
	var grouped []string
	for _, term := range missing {
		lower := strings.ToLower(term)
		for _, sub := range bulk.Substrings {
			if strings.Contains(lower, sub) {
				grouped = append(grouped, term)
				break
			}
		}
		if bulk.Cap > 0 && len(grouped) >= bulk.Cap {
			break
		}
	}
	return grouped
}
