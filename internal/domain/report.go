package domain

import (
	"path/filepath"
	"sort"
)

// ReportOptions controls how a ProjectResult is rendered.
type ReportOptions struct {
	Format     Format
	Verbose    bool
	BaseDir    string
	Threshold  int
	OutputPath string
}

// RelPath returns path relative to BaseDir, or path unchanged when no
// relative form exists.
func (o ReportOptions) RelPath(path string) string {
	if o.BaseDir == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(o.BaseDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// GradeBucket counts the files whose score falls in [Min, Max].
type GradeBucket struct {
	Grade string
	Min   int
	Max   int
	Count int
}

// gradeBounds lists the grade ranges from best to worst.
var gradeBounds = []GradeBucket{
	{Grade: "A", Min: 90, Max: 100},
	{Grade: "B", Min: 80, Max: 89},
	{Grade: "C", Min: 70, Max: 79},
	{Grade: "D", Min: 60, Max: 69},
	{Grade: "F", Min: 0, Max: 59},
}

// Distribution returns the number of files per grade, best grade first.
func (r ProjectResult) Distribution() []GradeBucket {
	out := make([]GradeBucket, len(gradeBounds))
	copy(out, gradeBounds)
	for _, f := range r.Files {
		for i := range out {
			if f.FileScore >= out[i].Min && f.FileScore <= out[i].Max {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// SortedFiles returns a copy of Files ordered by ascending score. Files with
// equal scores keep their discovery order.
func (r ProjectResult) SortedFiles() []FileRecord {
	out := make([]FileRecord, len(r.Files))
	copy(out, r.Files)
	sort.SliceStable(out, func(i, j int) bool { return out[i].FileScore < out[j].FileScore })
	return out
}

// FilesBelow returns the files scoring under threshold, lowest first.
func (r ProjectResult) FilesBelow(threshold int) []FileRecord {
	var out []FileRecord
	for _, f := range r.SortedFiles() {
		if f.FileScore < threshold {
			out = append(out, f)
		}
	}
	return out
}

// TestsBelow returns the tests scoring under threshold, in source order.
func (f FileRecord) TestsBelow(threshold int) []TestRecord {
	var out []TestRecord
	for _, t := range f.Tests {
		if t.OverallScore < threshold {
			out = append(out, t)
		}
	}
	return out
}
