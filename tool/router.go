package tool

import (
	"regexp"
	"strings"

	"github.com/hupe1980/agentsim/core"
)

// exprPattern recognizes two integers separated by a basic arithmetic
// operator with optional whitespace, e.g. "5 + 3" or "10/2".
var exprPattern = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)

// rule pairs a category with its match predicate over the lowercased message.
type rule struct {
	category core.Category
	match    func(lower string) bool
}

// Rule order matters: the rules are not mutually exclusive (a message can
// contain both a numeric expression and a time keyword), so the first match
// wins. The canonical order is Calculator > Weather > Time.
var rules = []rule{
	{
		category: core.CategoryCalculator,
		match: func(lower string) bool {
			return containsAny(lower, "계산", "더하기", "빼기", "곱하기", "나누기") ||
				exprPattern.MatchString(lower)
		},
	},
	{
		category: core.CategoryWeather,
		match: func(lower string) bool {
			return containsAny(lower, "날씨", "기온")
		},
	},
	{
		category: core.CategoryTime,
		match: func(lower string) bool {
			return containsAny(lower, "시간", "몇 시")
		},
	},
}

// Classify determines the single tool category for a message, or
// core.CategoryNone when no rule matches. It is a pure function over the
// lowercased message.
func Classify(message string) core.Category {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.match(lower) {
			return r.category
		}
	}
	return core.CategoryNone
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
