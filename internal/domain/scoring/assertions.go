package scoring

import "regexp"

// Assertion suggestions.
const (
	SuggestAddAssertions   = "No assertions found - tests should verify expected behavior"
	SuggestSplitAssertions = "Too many assertions - consider splitting into multiple tests"
	SuggestReviewScope     = "Many assertions - consider if this test covers too much"
)

// assertionPatterns are scanned independently; a matcher such as
// .toHaveCount is counted by every pattern it matches.
var assertionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`expect\s*\(`),
	regexp.MustCompile(`\.toBe`),
	regexp.MustCompile(`\.toEqual`),
	regexp.MustCompile(`\.toHave`),
	regexp.MustCompile(`\.toContain`),
	regexp.MustCompile(`\.toMatch`),
}

// CountAssertions sums the matches of every assertion pattern in body.
func CountAssertions(body string) int {
	count := 0
	for _, p := range assertionPatterns {
		count += len(p.FindAllStringIndex(body, -1))
	}
	return count
}

// ScoreAssertions rates assertion density. One to five is ideal.
func ScoreAssertions(body string) Result {
	switch count := CountAssertions(body); {
	case count == 0:
		return Result{Score: 30, Suggestions: []string{SuggestAddAssertions}}
	case count > 10:
		return Result{Score: 60, Suggestions: []string{SuggestSplitAssertions}}
	case count > 5:
		return Result{Score: 80, Suggestions: []string{SuggestReviewScope}}
	default:
		return Result{Score: 100}
	}
}
