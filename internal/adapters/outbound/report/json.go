package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/openkraft/readability/internal/domain"
)

type jsonReport struct {
	Summary jsonSummary `json:"summary"`
	Files   []jsonFile  `json:"files"`
}

type jsonSummary struct {
	OverallScore int    `json:"overallScore"`
	Grade        string `json:"grade"`
	TotalFiles   int    `json:"totalFiles"`
	TotalTests   int    `json:"totalTests"`
	AnalyzedAt   string `json:"analyzedAt"`
	Commit       string `json:"commit,omitempty"`
}

type jsonFile struct {
	Path        string     `json:"path"`
	Score       int        `json:"score"`
	Grade       string     `json:"grade"`
	LineCount   int        `json:"lineCount"`
	TestCount   int        `json:"testCount"`
	Suggestions []string   `json:"suggestions"`
	Tests       []jsonTest `json:"tests"`
}

type jsonTest struct {
	Name        string     `json:"name"`
	Line        int        `json:"line"`
	Scores      jsonScores `json:"scores"`
	Suggestions []string   `json:"suggestions"`
}

type jsonScores struct {
	Overall    int `json:"overall"`
	Name       int `json:"name"`
	Assertions int `json:"assertions"`
	Nesting    int `json:"nesting"`
	Length     int `json:"length"`
}

func buildJSON(result *domain.ProjectResult, opts domain.ReportOptions, meta Meta) jsonReport {
	files := make([]jsonFile, 0, len(result.Files))
	for _, f := range result.Files {
		tests := make([]jsonTest, 0, len(f.Tests))
		for _, t := range f.Tests {
			tests = append(tests, jsonTest{
				Name: t.Name,
				Line: t.Line,
				Scores: jsonScores{
					Overall:    t.OverallScore,
					Name:       t.NameScore,
					Assertions: t.AssertionScore,
					Nesting:    t.NestingScore,
					Length:     t.LengthScore,
				},
				Suggestions: nonNil(t.Suggestions),
			})
		}
		files = append(files, jsonFile{
			Path:        opts.RelPath(f.Path),
			Score:       f.FileScore,
			Grade:       domain.GradeFor(f.FileScore),
			LineCount:   f.LineCount,
			TestCount:   f.TestCount,
			Suggestions: nonNil(f.Suggestions),
			Tests:       tests,
		})
	}

	return jsonReport{
		Summary: jsonSummary{
			OverallScore: result.OverallScore,
			Grade:        result.Grade(),
			TotalFiles:   result.TotalFiles,
			TotalTests:   result.TotalTests,
			AnalyzedAt:   meta.GeneratedAt.UTC().Format(time.RFC3339Nano),
			Commit:       meta.Commit,
		},
		Files: files,
	}
}

func writeJSON(w io.Writer, result *domain.ProjectResult, opts domain.ReportOptions, meta Meta) error {
	data, err := json.MarshalIndent(buildJSON(result, opts, meta), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
