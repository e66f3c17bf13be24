// Package scoring computes the readability sub-scores of a test case and
// combines them into test, file and project scores.
package scoring

import (
	"strings"
	"unicode/utf16"
)

// Result is one sub-score together with the suggestions it produced.
type Result struct {
	Score       int
	Suggestions []string
}

const (
	minNameLength = 10
	maxNameLength = 100
)

// Name suggestions.
const (
	SuggestNameTooShort = "Test name is too short - be more descriptive"
	SuggestNameTooLong  = "Test name is very long - consider being more concise"
	SuggestActionVerbs  = "Consider using action verbs (should, displays, handles, etc.)"
	SuggestAvoidVague   = "Avoid vague names - describe the specific behavior being tested"
)

// ActionVerbs signal a name that describes behavior.
var ActionVerbs = []string{
	"should", "displays", "shows", "renders", "returns", "throws", "handles",
	"validates", "creates", "updates", "deletes", "navigates", "clicks", "submits",
}

// VagueTerms signal a name that says nothing about the behavior under test.
var VagueTerms = []string{"test1", "test2", "works", "basic", "simple", "misc"}

// ScoreName rates a test name starting from 100. Length deductions are
// exclusive; the verb and vague-term checks apply independently.
func ScoreName(name string) Result {
	score := 100
	var suggestions []string

	switch n := nameLength(name); {
	case n < minNameLength:
		score -= 25
		suggestions = append(suggestions, SuggestNameTooShort)
	case n > maxNameLength:
		score -= 15
		suggestions = append(suggestions, SuggestNameTooLong)
	}

	lower := strings.ToLower(name)
	if !containsAny(lower, ActionVerbs) {
		score -= 20
		suggestions = append(suggestions, SuggestActionVerbs)
	}
	if containsAny(lower, VagueTerms) {
		score -= 30
		suggestions = append(suggestions, SuggestAvoidVague)
	}

	return Result{Score: max(0, score), Suggestions: suggestions}
}

// nameLength counts UTF-16 code units, the unit test runners report names in.
func nameLength(name string) int {
	n := 0
	for _, r := range name {
		n += utf16.RuneLen(r)
	}
	return n
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
