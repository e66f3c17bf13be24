package scoring

import (
	"strings"

	"github.com/openkraft/readability/internal/domain"
	"github.com/openkraft/readability/internal/domain/locator"
)

const (
	maxFileLines = 500
	maxFileTests = 20
)

// File suggestions.
const (
	SuggestSplitFile  = "File is very long - consider splitting into multiple files"
	SuggestReorganize = "Many tests in one file - consider organizing into smaller files"
	ParseErrorPrefix  = "Parse error: "
)

// ParseErrorSuggestion formats a parser failure as a file suggestion.
func ParseErrorSuggestion(err error) string {
	return ParseErrorPrefix + err.Error()
}

// CountLines returns the number of newline-separated segments in content.
// An empty file counts as one line.
func CountLines(content string) int {
	return strings.Count(content, "\n") + 1
}

// FileSuggestions returns the size-based suggestions for a file.
func FileSuggestions(lineCount, testCount int) []string {
	var out []string
	if lineCount > maxFileLines {
		out = append(out, SuggestSplitFile)
	}
	if testCount > maxFileTests {
		out = append(out, SuggestReorganize)
	}
	return out
}

// FileScore is the rounded mean of the overall scores of tests, 0 when empty.
func FileScore(tests []domain.TestRecord) int {
	scores := make([]int, 0, len(tests))
	for _, t := range tests {
		scores = append(scores, t.OverallScore)
	}
	return domain.RoundedMean(scores)
}

// ProjectScore is the rounded mean of the file scores, 0 when empty.
func ProjectScore(files []domain.FileRecord) int {
	scores := make([]int, 0, len(files))
	for _, f := range files {
		scores = append(scores, f.FileScore)
	}
	return domain.RoundedMean(scores)
}

// ScoreFile scores every fact and builds the file record. parseErr is the
// parser failure, if any; its suggestion comes before the size-based ones.
func ScoreFile(path, content string, facts []locator.TestFact, parseErr error) domain.FileRecord {
	tests := make([]domain.TestRecord, 0, len(facts))
	for _, f := range facts {
		tests = append(tests, ScoreTest(f))
	}

	suggestions := []string{}
	if parseErr != nil {
		suggestions = append(suggestions, ParseErrorSuggestion(parseErr))
	}
	lineCount := CountLines(content)
	suggestions = append(suggestions, FileSuggestions(lineCount, len(tests))...)

	return domain.FileRecord{
		Path:        path,
		Tests:       tests,
		FileScore:   FileScore(tests),
		LineCount:   lineCount,
		TestCount:   len(tests),
		Suggestions: suggestions,
	}
}
