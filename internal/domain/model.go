package domain

import "math"

// TestRecord is the scored result of a single test-case declaration.
type TestRecord struct {
	Name           string   `json:"name"`
	Line           int      `json:"line"`
	NameScore      int      `json:"name_score"`
	AssertionScore int      `json:"assertion_score"`
	NestingScore   int      `json:"nesting_score"`
	LengthScore    int      `json:"length_score"`
	OverallScore   int      `json:"overall_score"`
	Suggestions    []string `json:"suggestions"`
}

// FileRecord holds every test found in one file, in source order.
type FileRecord struct {
	Path        string       `json:"path"`
	Tests       []TestRecord `json:"tests"`
	FileScore   int          `json:"file_score"`
	LineCount   int          `json:"line_count"`
	TestCount   int          `json:"test_count"`
	Suggestions []string     `json:"suggestions"`
}

// ProjectResult aggregates all analyzed files of a run.
type ProjectResult struct {
	Files        []FileRecord `json:"files"`
	OverallScore int          `json:"overall_score"`
	TotalTests   int          `json:"total_tests"`
	TotalFiles   int          `json:"total_files"`
}

// NewProjectResult aggregates file records. The overall score is the rounded
// mean of the file scores, 0 when there are no files.
func NewProjectResult(files []FileRecord) *ProjectResult {
	if files == nil {
		files = []FileRecord{}
	}

	totalTests := 0
	scores := make([]int, 0, len(files))
	for _, f := range files {
		totalTests += f.TestCount
		scores = append(scores, f.FileScore)
	}

	return &ProjectResult{
		Files:        files,
		OverallScore: RoundedMean(scores),
		TotalTests:   totalTests,
		TotalFiles:   len(files),
	}
}

// RoundedMean returns round(mean(values)), or 0 for an empty slice.
func RoundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

// Grade returns the letter grade of the project score.
func (r ProjectResult) Grade() string { return GradeFor(r.OverallScore) }

// GradeFor maps a 0-100 score to a letter grade. The same scale is used for
// tests, files and projects.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// ScoreEntry is one line of the persisted score history.
type ScoreEntry struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Overall    int    `json:"overall"`
	Grade      string `json:"grade"`
	TotalFiles int    `json:"total_files"`
	TotalTests int    `json:"total_tests"`
}
