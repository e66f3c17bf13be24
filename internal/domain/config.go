package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Format selects how a ProjectResult is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ValidFormats enumerates all report formats.
var ValidFormats = []Format{FormatText, FormatJSON, FormatHTML}

const (
	// DefaultThreshold is the minimum passing project score.
	DefaultThreshold = 70
	// DependencyDir is never descended into during discovery.
	DependencyDir = "node_modules"
	// DefaultHTMLOutput is written to the working directory when an HTML
	// report has no explicit output path.
	DefaultHTMLOutput = "readability-report.html"
)

// DefaultSuffixes are the file name endings of candidate test files.
var DefaultSuffixes = []string{".spec.ts", ".test.ts"}

// ErrInvalidThreshold is returned for thresholds that are not integers in [0,100].
var ErrInvalidThreshold = errors.New("threshold must be a number between 0 and 100")

// ProjectConfig holds project-level configuration loaded from .readability.yaml.
type ProjectConfig struct {
	Threshold    *int     `yaml:"threshold,omitempty"     json:"threshold,omitempty"`
	Format       Format   `yaml:"format,omitempty"        json:"format,omitempty"`
	Suffixes     []string `yaml:"suffixes,omitempty"      json:"suffixes,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths,omitempty" json:"exclude_paths,omitempty"`
	Patterns     []string `yaml:"patterns,omitempty"      json:"patterns,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectiveThreshold returns the configured threshold or DefaultThreshold.
func (c ProjectConfig) EffectiveThreshold() int {
	if c.Threshold != nil {
		return *c.Threshold
	}
	return DefaultThreshold
}

// EffectiveFormat returns the configured format or FormatText.
func (c ProjectConfig) EffectiveFormat() Format {
	if c.Format != "" {
		return c.Format
	}
	return FormatText
}

// EffectiveSuffixes returns the configured suffixes or DefaultSuffixes.
func (c ProjectConfig) EffectiveSuffixes() []string {
	if len(c.Suffixes) > 0 {
		return c.Suffixes
	}
	return DefaultSuffixes
}

// IsTestFile reports whether a file name ends in one of the test suffixes.
func (c ProjectConfig) IsTestFile(name string) bool {
	for _, s := range c.EffectiveSuffixes() {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Threshold != nil {
		if err := ValidateThreshold(*c.Threshold); err != nil {
			return err
		}
	}

	if c.Format != "" {
		if _, err := ParseFormat(string(c.Format)); err != nil {
			return err
		}
	}

	for i, s := range c.Suffixes {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("suffixes[%d] must not be empty", i)
		}
	}

	for _, p := range c.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid pattern %q in patterns", p)
		}
	}

	return nil
}

// ValidateThreshold checks that a threshold lies in [0,100].
func ValidateThreshold(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w (got %d)", ErrInvalidThreshold, v)
	}
	return nil
}

// ParseThreshold parses a user-supplied threshold.
func ParseThreshold(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidThreshold, s)
	}
	if err := ValidateThreshold(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseFormat parses a user-supplied report format.
func ParseFormat(s string) (Format, error) {
	for _, f := range ValidFormats {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (valid: text, json, html)", s)
}
