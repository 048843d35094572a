package barcode

import (
	"slices"
	"strings"
)

// Rule maps a set of GS1 prefixes to a category.
type Rule struct {
	Prefixes []string
	Category Category
}

// rules are evaluated top to bottom and the first matching prefix wins.
// Longer, more specific prefixes must stay above shorter ones they could shadow.
var rules = []Rule{
	{Prefixes: []string{"890"}, Category: India},
	{Prefixes: []string{"690", "691", "692"}, Category: China},
	{Prefixes: []string{"00", "01"}, Category: UnitedStates},
	{Prefixes: []string{"45", "49"}, Category: Japan},
	{Prefixes: []string{"754", "755"}, Category: Canada},
	{Prefixes: []string{"880"}, Category: Bangladesh},
}

// Rules returns a copy of the ordered prefix rules.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Prefixes: slices.Clone(r.Prefixes), Category: r.Category}
	}
	return out
}

// Classify maps a decoded barcode string to its country-of-origin category.
// It is total: every input, including the empty string, maps to exactly one category.
func Classify(code string) Category {
	if code == "" {
		return NoBarcode
	}
	for _, r := range rules {
		for _, p := range r.Prefixes {
			if strings.HasPrefix(code, p) {
				return r.Category
			}
		}
	}
	return Unknown
}

// Result is a classification together with the code it was derived from.
type Result struct {
	Category Category `json:"category"`
	Code     string   `json:"code"`
}

// Inspect classifies code and keeps the code alongside the verdict.
func Inspect(code string) Result {
	return Result{Category: Classify(code), Code: code}
}
