package advice

// ScoreBand maps a score range to a headline message. Bands are
// evaluated in order; the first band whose Below bound exceeds the
// score wins, and a Below of 0 marks the catch-all final band.
type ScoreBand struct {
	Below   float64 `json:"below"`
	Message string  `json:"message"`
}

// KeywordHint emits Message when any term of Any is missing.
type KeywordHint struct {
	Any     []string `json:"any"`
	Message string   `json:"message"`
}

// BulkHint groups missing terms that contain one of Substrings into a
// single capped suggestion built by Render.
type BulkHint struct {
	Substrings []string `json:"substrings"`
	Cap        int      `json:"cap"`
	Prefix     string   `json:"prefix"`
}

// RuleSet is the full suggestion table: score bands, then keyword
// hints, then an optional bulk hint, each independently appended when
// its condition holds. The table is data so other domains can supply
// their own without touching the evaluator.
type RuleSet struct {
	Bands []ScoreBand   `json:"bands"`
	Hints []KeywordHint `json:"hints"`
	Bulk  *BulkHint     `json:"bulk,omitempty"`
}

// DefaultRuleSet reproduces the original cybersecurity suggestion
// table the optimizer shipped with.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Bands: []ScoreBand{
			{Below: 40, Message: "URGENT: Major keyword gap for cybersecurity positions"},
			{Below: 60, Message: "NEEDS WORK: Add cybersecurity keywords to key sections"},
			{Below: 0, Message: "GOOD: Strong cybersecurity keyword presence"},
		},
		Hints: []KeywordHint{
			{Any: []string{"threat"}, Message: "Add 'threat detection' to your monitoring experience"},
			{Any: []string{"incident", "response"}, Message: "Reframe 'ticket resolution' as 'incident response'"},
			{Any: []string{"triage"}, Message: "Add 'alert triage' to your support roles"},
			{Any: []string{"investigation"}, Message: "Use 'security investigations' instead of general troubleshooting"},
		},
		Bulk: &BulkHint{
			Substrings: []string{"security", "siem", "incident", "threat", "vulnerability", "detection"},
			Cap:        5,
			Prefix:     "SECURITY FOCUS: Add ",
		},
	}
}
