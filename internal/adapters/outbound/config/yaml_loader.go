package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/readability/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the analyzed root.
const FileName = ".readability.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .readability.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .readability.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

// Template returns the commented starter file written by `init`.
func Template() []byte {
	return []byte(`# test-readability configuration
# Minimum overall score (0-100); the run fails below it.
threshold: 70

# Report format: text, json or html.
format: text

# File name endings that mark a test file.
suffixes:
  - .spec.ts
  - .test.ts

# Path prefixes (relative to the project root) to skip.
exclude_paths: []

# Optional doublestar globs; when set, a test file must match one of them.
patterns: []
`)
}
