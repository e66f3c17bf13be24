package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/openkraft/readability/internal/domain"
	"github.com/openkraft/readability/internal/domain/locator"
	"github.com/openkraft/readability/internal/domain/scoring"
)

// AnalyzeService orchestrates the readability pipeline:
// load config → discover test files → parse → locate tests → score → aggregate.
// Files are processed one at a time in discovery order.
type AnalyzeService struct {
	scanner      domain.TestFileScanner
	parser       domain.SourceParser
	configLoader domain.ConfigLoader
	logger       *slog.Logger
}

func NewAnalyzeService(
	scanner domain.TestFileScanner,
	parser domain.SourceParser,
	configLoader domain.ConfigLoader,
	logger *slog.Logger,
) *AnalyzeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnalyzeService{
		scanner:      scanner,
		parser:       parser,
		configLoader: configLoader,
		logger:       logger,
	}
}

// LoadConfig reads the project configuration of root.
func (s *AnalyzeService) LoadConfig(root string) (domain.ProjectConfig, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// FindTestFiles discovers candidate test files below root using the
// project configuration found there.
func (s *AnalyzeService) FindTestFiles(root string) ([]string, error) {
	cfg, err := s.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return s.findTestFiles(root, cfg)
}

func (s *AnalyzeService) findTestFiles(root string, cfg domain.ProjectConfig) ([]string, error) {
	files, err := s.scanner.Scan(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return files, nil
}

// AnalyzeFile scores a single test file. A read failure is returned as an
// error; a parse failure becomes a file suggestion and yields no tests.
func (s *AnalyzeService) AnalyzeFile(ctx context.Context, path string) (domain.FileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FileRecord{}, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	root, parseErr := s.parser.Parse(ctx, path, data)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.FileRecord{}, ctxErr
	}

	var facts []locator.TestFact
	if parseErr != nil {
		s.logger.Warn("parse failed", "file", path, "error", parseErr)
	} else {
		facts = locator.Locate(root, content)
	}

	rec := scoring.ScoreFile(path, content, facts, parseErr)
	s.logger.Debug("analyzed file", "file", path, "tests", rec.TestCount, "score", rec.FileScore)
	return rec, nil
}

// Analyze discovers and scores every test file below root.
func (s *AnalyzeService) Analyze(ctx context.Context, root string) (*domain.ProjectResult, error) {
	cfg, err := s.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeWithConfig(ctx, root, cfg)
}

// AnalyzeWithConfig is Analyze with an already loaded configuration.
func (s *AnalyzeService) AnalyzeWithConfig(ctx context.Context, root string, cfg domain.ProjectConfig) (*domain.ProjectResult, error) {
	paths, err := s.findTestFiles(root, cfg)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("discovered test files", "root", root, "count", len(paths))

	files := make([]domain.FileRecord, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := s.AnalyzeFile(ctx, p)
		if err != nil {
			return nil, err
		}
		files = append(files, rec)
	}

	result := domain.NewProjectResult(files)
	s.logger.Info("analysis complete",
		"root", root, "files", result.TotalFiles, "tests", result.TotalTests, "score", result.OverallScore)
	return result, nil
}
