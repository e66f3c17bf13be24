package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/openkraft/readability/internal/domain"
	"github.com/openkraft/readability/internal/domain/scoring"
)

//go:embed assets/*
var assets embed.FS

const maxHTMLTestSuggestions = 3

type htmlData struct {
	CSS         template.CSS
	JS          template.JS
	Overall     int
	Grade       string
	TotalFiles  int
	TotalTests  int
	Threshold   int
	Commit      string
	GeneratedAt string
	Buckets     []domain.GradeBucket
	Below       []htmlFile
	All         []htmlFile
	Criteria    []htmlCriterion
}

type htmlFile struct {
	Path        string
	Score       int
	LineCount   int
	TestCount   int
	Suggestions []string
	Tests       []htmlTest
}

type htmlTest struct {
	Name        string
	Line        int
	Overall     int
	NameScore   int
	Assertions  int
	Nesting     int
	Length      int
	Suggestions []string
}

type htmlCriterion struct {
	Title  string
	Weight int
	Hint   string
}

var htmlCriteria = []htmlCriterion{
	{"Test Name", percent(scoring.WeightName), "Descriptive names with action verbs (should, displays, handles)"},
	{"Assertions", percent(scoring.WeightAssertions), "1-5 assertions per test is ideal"},
	{"Nesting Depth", percent(scoring.WeightNesting), "Flat structure, minimal nesting (1-4 levels)"},
	{"Test Length", percent(scoring.WeightLength), "3-30 lines per test is ideal"},
}

var funcs = template.FuncMap{
	"gradeClass": func(score int) string {
		switch domain.GradeFor(score) {
		case "A":
			return "score-a"
		case "B":
			return "score-b"
		case "C":
			return "score-c"
		case "D":
			return "score-d"
		default:
			return "score-f"
		}
	},
	"lower": strings.ToLower,
}

func percent(w float64) int { return int(math.Round(w * 100)) }

func toHTMLTest(t domain.TestRecord, maxSuggestions int) htmlTest {
	s := t.Suggestions
	if maxSuggestions >= 0 && len(s) > maxSuggestions {
		s = s[:maxSuggestions]
	}
	return htmlTest{
		Name:        t.Name,
		Line:        t.Line,
		Overall:     t.OverallScore,
		NameScore:   t.NameScore,
		Assertions:  t.AssertionScore,
		Nesting:     t.NestingScore,
		Length:      t.LengthScore,
		Suggestions: s,
	}
}

func buildHTML(result *domain.ProjectResult, opts domain.ReportOptions, meta Meta) htmlData {
	data := htmlData{
		Overall:     result.OverallScore,
		Grade:       result.Grade(),
		TotalFiles:  result.TotalFiles,
		TotalTests:  result.TotalTests,
		Threshold:   opts.Threshold,
		Commit:      meta.Commit,
		GeneratedAt: meta.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		Buckets:     result.Distribution(),
		Criteria:    htmlCriteria,
	}

	for _, f := range result.FilesBelow(opts.Threshold) {
		hf := htmlFile{
			Path:        opts.RelPath(f.Path),
			Score:       f.FileScore,
			LineCount:   f.LineCount,
			TestCount:   f.TestCount,
			Suggestions: f.Suggestions,
		}
		for _, t := range f.TestsBelow(opts.Threshold) {
			hf.Tests = append(hf.Tests, toHTMLTest(t, maxHTMLTestSuggestions))
		}
		data.Below = append(data.Below, hf)
	}

	for _, f := range result.SortedFiles() {
		hf := htmlFile{
			Path:      opts.RelPath(f.Path),
			Score:     f.FileScore,
			LineCount: f.LineCount,
			TestCount: f.TestCount,
		}
		for _, t := range f.Tests {
			hf.Tests = append(hf.Tests, toHTMLTest(t, 0))
		}
		data.All = append(data.All, hf)
	}

	return data
}

func writeHTML(w io.Writer, result *domain.ProjectResult, opts domain.ReportOptions, meta Meta) error {
	cssBytes, err := assets.ReadFile("assets/style.css")
	if err != nil {
		return fmt.Errorf("reading CSS: %w", err)
	}

	jsBytes, err := assets.ReadFile("assets/app.js")
	if err != nil {
		return fmt.Errorf("reading JS: %w", err)
	}

	htmlBytes, err := assets.ReadFile("assets/template.html")
	if err != nil {
		return fmt.Errorf("reading HTML template: %w", err)
	}

	tmpl, err := template.New("report").Funcs(funcs).Parse(string(htmlBytes))
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	data := buildHTML(result, opts, meta)
	//nolint:gosec // G203: CSS/JS come from embedded assets
	data.CSS = template.CSS(cssBytes)
	data.JS = template.JS(jsBytes)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}
