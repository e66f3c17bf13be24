package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/openkraft/readability/internal/adapters/outbound/config"
	"github.com/openkraft/readability/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/readability/internal/adapters/outbound/history"
	"github.com/openkraft/readability/internal/adapters/outbound/parser"
	"github.com/openkraft/readability/internal/adapters/outbound/report"
	"github.com/openkraft/readability/internal/adapters/outbound/scanner"
	"github.com/openkraft/readability/internal/application"
	"github.com/openkraft/readability/internal/domain"
)

type analyzeOptions struct {
	threshold string
	format    string
	output    string
	verbose   bool
	logLevel  string
	noHistory bool
}

func (o *analyzeOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.threshold, "threshold", "t", "", "Minimum passing score 0-100 (default from .readability.yaml, else 70)")
	f.StringVarP(&o.format, "format", "f", "", "Output format: text, json, or html (default text)")
	f.StringVarP(&o.output, "output", "o", "", "Output file path (html defaults to ./"+domain.DefaultHTMLOutput+")")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Show individual test details")
	f.StringVar(&o.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.BoolVar(&o.noHistory, "no-history", false, "Do not record this run in the score history")
}

func runAnalyze(cmd *cobra.Command, args []string, o *analyzeOptions) error {
	// Flags are validated before anything touches the project.
	var flagThreshold *int
	if o.threshold != "" {
		v, err := domain.ParseThreshold(o.threshold)
		if err != nil {
			return err
		}
		flagThreshold = &v
	}

	var format domain.Format
	if o.format != "" {
		f, err := domain.ParseFormat(o.format)
		if err != nil {
			return err
		}
		format = f
	}

	logger, err := newLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(projectArg(args))
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	svc := application.NewAnalyzeService(scanner.New(), parser.New(), config.New(), logger)

	cfg, err := svc.LoadConfig(root)
	if err != nil {
		return err
	}

	threshold := cfg.EffectiveThreshold()
	if flagThreshold != nil {
		threshold = *flagThreshold
	}
	if format == "" {
		format = cfg.EffectiveFormat()
	}

	outputPath := o.output
	if format == domain.FormatHTML && outputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		outputPath = filepath.Join(cwd, domain.DefaultHTMLOutput)
	}

	out := cmd.OutOrStdout()
	if format == domain.FormatText && outputPath == "" {
		fmt.Fprintf(out, "\nAnalyzing tests in: %s\n", root)
		fmt.Fprintf(out, "Passing threshold: %d\n\n", threshold)
	}

	result, err := svc.AnalyzeWithConfig(cmd.Context(), root, cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	now := time.Now()
	var (
		git  domain.GitInfo      = gitinfo.New()
		hist domain.ScoreHistory = history.New()
		hash string
	)
	if git.IsGitRepo(root) {
		if h, err := git.CommitHash(root); err == nil {
			hash = h
			logger.Debug("stamping commit", "commit", gitinfo.ShortHash(hash))
		} else {
			logger.Debug("no commit information", "path", root, "error", err)
		}
	}

	// History is best-effort.
	if !o.noHistory {
		if err := hist.Save(root, history.NewEntry(result, hash, now)); err != nil {
			logger.Warn("saving history failed", "error", err)
		}
	}

	opts := domain.ReportOptions{
		Format:     format,
		Verbose:    o.verbose,
		BaseDir:    root,
		Threshold:  threshold,
		OutputPath: outputPath,
	}
	meta := report.Meta{GeneratedAt: now, Commit: hash}

	if outputPath == "" {
		if err := report.Render(out, result, opts, meta); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	} else {
		if err := writeReport(outputPath, result, opts, meta); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report generated: %s\n", outputPath)
		fmt.Fprintf(out, "   Overall score: %d/100\n", result.OverallScore)
		fmt.Fprintf(out, "   Files analyzed: %d\n", result.TotalFiles)
		fmt.Fprintf(out, "   Tests analyzed: %d\n", result.TotalTests)
	}

	if result.OverallScore < threshold {
		return fmt.Errorf("overall score %d is below threshold %d", result.OverallScore, threshold)
	}
	return nil
}

func writeReport(path string, result *domain.ProjectResult, opts domain.ReportOptions, meta report.Meta) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writing report: %w", cerr)
		}
	}()

	if err := report.Render(f, result, opts, meta); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
