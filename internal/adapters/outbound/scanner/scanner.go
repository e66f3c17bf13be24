package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/openkraft/readability/internal/domain"
)

// FileScanner implements domain.TestFileScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns every test file below rootPath in lexical, depth-first order.
// Returned paths are rootPath joined with the file's relative path. The first
// walk error aborts the scan.
func (s *FileScanner) Scan(rootPath string, cfg domain.ProjectConfig) ([]string, error) {
	skip := buildSkipSet(cfg.ExcludePaths)

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if shouldSkipDir(path, rootPath, skip) {
				return filepath.SkipDir
			}
			return nil
		}

		if !cfg.IsTestFile(d.Name()) {
			return nil
		}
		if len(cfg.Patterns) > 0 && !matchesAnyPattern(path, rootPath, cfg.Patterns) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// buildSkipSet always contains the dependency directory. Configured entries
// match either a directory name or a root-relative slash path.
func buildSkipSet(excludePaths []string) map[string]bool {
	skip := make(map[string]bool, len(excludePaths)+1)
	skip[domain.DependencyDir] = true
	for _, p := range excludePaths {
		p = strings.Trim(filepath.ToSlash(p), "/")
		if p != "" {
			skip[p] = true
		}
	}
	return skip
}

func shouldSkipDir(path, rootPath string, skip map[string]bool) bool {
	if path == rootPath {
		return false
	}
	if skip[filepath.Base(path)] {
		return true
	}
	rel, err := filepath.Rel(rootPath, path)
	if err != nil {
		return false
	}
	return skip[filepath.ToSlash(rel)]
}

func matchesAnyPattern(path, rootPath string, patterns []string) bool {
	relPath, err := filepath.Rel(rootPath, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
