package scoring

import (
	"math"

	"github.com/openkraft/readability/internal/domain"
	"github.com/openkraft/readability/internal/domain/locator"
)

// Weights of each sub-score in the overall test score.
const (
	WeightName       = 0.25
	WeightAssertions = 0.30
	WeightNesting    = 0.20
	WeightLength     = 0.25
)

// CombineScores returns the weighted overall score, rounded once. The
// explicit conversions round each product before the sum; they must not be
// fused into multiply-adds.
func CombineScores(name, assertions, nesting, length int) int {
	return int(math.Round(
		float64(float64(name)*WeightName) +
			float64(float64(assertions)*WeightAssertions) +
			float64(float64(nesting)*WeightNesting) +
			float64(float64(length)*WeightLength),
	))
}

// ScoreTest computes all sub-scores of a located test case.
func ScoreTest(fact locator.TestFact) domain.TestRecord {
	name := ScoreName(fact.Name)
	assertions := ScoreAssertions(fact.BodyText)
	nesting := ScoreNesting(fact.BodyText)
	length := ScoreLength(fact.BodyLineCount)

	suggestions := make([]string, 0,
		len(name.Suggestions)+len(assertions.Suggestions)+len(nesting.Suggestions)+len(length.Suggestions))
	suggestions = append(suggestions, name.Suggestions...)
	suggestions = append(suggestions, assertions.Suggestions...)
	suggestions = append(suggestions, nesting.Suggestions...)
	suggestions = append(suggestions, length.Suggestions...)

	return domain.TestRecord{
		Name:           fact.Name,
		Line:           fact.DeclarationLine,
		NameScore:      name.Score,
		AssertionScore: assertions.Score,
		NestingScore:   nesting.Score,
		LengthScore:    length.Score,
		OverallScore:   CombineScores(name.Score, assertions.Score, nesting.Score, length.Score),
		Suggestions:    suggestions,
	}
}
