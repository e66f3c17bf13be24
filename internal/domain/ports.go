package domain

import (
	"context"

	"github.com/openkraft/readability/internal/domain/syntax"
)

// TestFileScanner discovers candidate test files below a root directory.
type TestFileScanner interface {
	Scan(rootPath string, cfg ProjectConfig) ([]string, error)
}

// SourceParser turns source text into a syntax tree. A non-nil error means
// the source is malformed; the returned tree may then be partial.
type SourceParser interface {
	Parse(ctx context.Context, filename string, source []byte) (syntax.Node, error)
}

// ConfigLoader reads the project configuration of a root directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ScoreHistory persists score entries per project.
type ScoreHistory interface {
	Save(projectPath string, entry ScoreEntry) error
	Load(projectPath string) ([]ScoreEntry, error)
}

// GitInfo reads repository metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
