package scoring

// Nesting suggestions.
const (
	SuggestReduceComplexity = "Very deep nesting - refactor to reduce complexity"
	SuggestReduceDepth      = "Consider reducing nesting depth for readability"
)

// MaxBraceDepth returns the deepest level of curly-brace nesting in body.
// Braces inside strings and comments are counted like any other.
func MaxBraceDepth(body string) int {
	depth, maxDepth := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
			maxDepth = max(maxDepth, depth)
		case '}':
			depth--
		}
	}
	return maxDepth
}

// ScoreNesting rates the brace depth of a test body.
func ScoreNesting(body string) Result {
	switch depth := MaxBraceDepth(body); {
	case depth > 6:
		return Result{Score: 40, Suggestions: []string{SuggestReduceComplexity}}
	case depth > 4:
		return Result{Score: 70, Suggestions: []string{SuggestReduceDepth}}
	default:
		return Result{Score: 100}
	}
}
