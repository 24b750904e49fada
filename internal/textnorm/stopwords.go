package textnorm

// DefaultStopWords is the fixed set of common English function words
// excluded from keyword extraction. Callers that need a different set
// (other languages, stricter filtering) pass their own via Options.
var DefaultStopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"done": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "you": true, "she": true,
	"not": true, "from": true, "out": true, "about": true, "into": true,
	"over": true, "after": true, "before": true, "during": true, "under": true,
	"above": true, "below": true, "between": true, "among": true, "an": true,
	"as": true, "we": true, "they": true, "he": true, "no": true,
	"up": true, "i": true,
}
