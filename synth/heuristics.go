package synth

import (
	"strings"

	"golang.org/x/text/cases"
)

// Canonical literals for recognized string formats.
var formatValues = map[string]string{
	"email":     "user@example.com",
	"date":      "2024-01-01",
	"date-time": "2024-01-01T12:00:00Z",
	"uuid":      "123e4567-e89b-12d3-a456-426614174000",
}

// nameRule maps a case-folded property-name substring to a representative
// value. Rules are evaluated in order; first match wins.
type nameRule struct {
	substr string
	value  any
}

// stringNameRules is the priority-ordered rule list for string properties.
var stringNameRules = []nameRule{
	{"name", "John Doe"},
	{"title", "Sample Title"},
	{"description", "This is a sample description"},
	{"id", "abc123"},
	{"email", "user@example.com"},
	{"password", "P@ssw0rd!"},
	{"type", "standard"},
	{"phone", "+1-555-0123"},
	{"address", "123 Main Street"},
	{"city", "Springfield"},
	{"country", "USA"},
	{"token", "eyJhbGciOiJIUzI1NiJ9.sample"},
	{"url", "https://example.com"},
	{"code", "ABC123"},
}

// numberNameRules is the rule list for number and integer properties.
var numberNameRules = []nameRule{
	{"id", 1},
	{"count", 10},
	{"price", 99.99},
	{"age", 25},
}

// defaultFillerPool holds the filler words used for strings that match no
// heuristic. A word is drawn via the configured RandSource.
var defaultFillerPool = []string{
	"lorem", "ipsum", "sample", "example", "demo", "placeholder", "value", "text",
}

// formatValue returns the canonical literal for a declared string format.
func formatValue(format string) (string, bool) {
	v, ok := formatValues[format]
	return v, ok
}

// valueForName returns the first rule value whose substring occurs in the
// case-folded property name.
func valueForName(rules []nameRule, name string) (any, bool) {
	if name == "" {
		return nil, false
	}
	folded := cases.Fold().String(name)
	for _, rule := range rules {
		if containsFolded(folded, rule.substr) {
			return rule.value, true
		}
	}
	return nil, false
}

func containsFolded(foldedName, substr string) bool {
	// Rule substrings are already lowercase ASCII; the name was folded once.
	return strings.Contains(foldedName, substr)
}

// fillerWord draws a pseudo-random filler word from the pool.
func fillerWord(rnd RandSource, pool []string) string {
	if len(pool) == 0 {
		pool = defaultFillerPool
	}
	return pool[rnd.IntN(len(pool))]
}
