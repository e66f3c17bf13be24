package scoring

// Length suggestions.
const (
	SuggestBreakUp         = "Test is very long (>50 lines) - consider breaking it up"
	SuggestGettingLong     = "Test is getting long - consider if it does too much"
	SuggestMeaningfulCheck = "Very short test - ensure it verifies meaningful behavior"
)

// ScoreLength rates the number of lines spanned by a test body.
func ScoreLength(lineCount int) Result {
	switch {
	case lineCount > 50:
		return Result{Score: 50, Suggestions: []string{SuggestBreakUp}}
	case lineCount > 30:
		return Result{Score: 70, Suggestions: []string{SuggestGettingLong}}
	case lineCount < 3:
		return Result{Score: 80, Suggestions: []string{SuggestMeaningfulCheck}}
	default:
		return Result{Score: 100}
	}
}
