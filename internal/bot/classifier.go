package bot

import "strings"

// Intent labels the classified purpose of a user message.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentBestseller Intent = "bestseller"
	IntentClarify    Intent = "clarify"
	IntentBrand      Intent = "brand"
	IntentPlaystyle  Intent = "playstyle"
	IntentPrice      Intent = "price"
	IntentSearch     Intent = "search"
)

// Classification is the classifier's verdict: the winning intent plus the
// captured parameter (brand or playstyle label) when one applies.
type Classification struct {
	Intent Intent
	Param  string
}

// rule is one entry in the ordered intent table. match is a pure predicate
// over the lowercased message; suppress, when set, vetoes an otherwise
// matching rule so a more specific one further down can take the message.
type rule struct {
	intent   Intent
	match    Pattern
	suppress Pattern
	param    func(text string) string
}

// Classifier evaluates the ordered intent rules, first match wins.
// Rule order is part of the contract: reordering changes outcomes.
// The rule table is read-only after construction, so one Classifier is safe
// to share across concurrent requests.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the classifier with its fixed rule table.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{intent: IntentGreeting, match: hasPrefixAny(greetingPrefixes...)},
			{intent: IntentBestseller, match: containsAny(bestsellerKeywords...)},
			{
				// A bare "racket" mention is under-specified: asking the
				// user to narrow down beats dumping the whole catalog.
				// Suppressed when a brand or playstyle also matches.
				intent:   IntentClarify,
				match:    containsAny(racketKeywords...),
				suppress: anyOf(tableMatcher(brandTable), tableMatcher(playstyleTable)),
			},
			{intent: IntentBrand, match: tableMatcher(brandTable), param: tableLabel(brandTable)},
			{intent: IntentPlaystyle, match: tableMatcher(playstyleTable), param: tableLabel(playstyleTable)},
			{intent: IntentPrice, match: containsAny(priceKeywords...)},
		},
	}
}

// Classify is total: every message gets exactly one intent, falling back to
// general search when no rule matches.
func (c *Classifier) Classify(message string) Classification {
	text := strings.ToLower(strings.TrimSpace(message))

	for _, r := range c.rules {
		if !r.match(text) {
			continue
		}
		if r.suppress != nil && r.suppress(text) {
			continue
		}
		cls := Classification{Intent: r.intent}
		if r.param != nil {
			cls.Param = r.param(text)
		}
		return cls
	}

	return Classification{Intent: IntentSearch}
}
