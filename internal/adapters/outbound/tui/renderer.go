package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/readability/internal/domain"
	"github.com/openkraft/readability/internal/domain/scoring"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
	orange  = lipgloss.Color("#FB923C")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A": success,
		"B": lime,
		"C": warning,
		"D": orange,
		"F": danger,
	}

	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	faintStyle     = lipgloss.NewStyle().Foreground(faint)
	passStyle      = lipgloss.NewStyle().Foreground(success)
	failStyle      = lipgloss.NewStyle().Foreground(danger)
	warnStyle      = lipgloss.NewStyle().Foreground(warning)
	fileStyle      = lipgloss.NewStyle().Bold(true).Foreground(fg)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	frameStyle     = lipgloss.NewStyle().Foreground(faint)
	separatorLine  = faintStyle.Render(strings.Repeat("─", 64))
	frameBottomRaw = "└" + strings.Repeat("─", 61)
)

const distributionWidth = 20

// criteria describes the four sub-scores in the legend.
var criteria = []struct {
	name   string
	weight float64
	hint   string
}{
	{"Test Name", scoring.WeightName, "Descriptive, uses action verbs"},
	{"Assertions", scoring.WeightAssertions, "1-5 assertions per test"},
	{"Nesting", scoring.WeightNesting, "Minimal depth, flat structure"},
	{"Length", scoring.WeightLength, "3-30 lines per test"},
}

// RenderReport formats an analysis result for terminal output.
func RenderReport(result *domain.ProjectResult, opts domain.ReportOptions) string {
	var b strings.Builder

	// ── Header ──
	grade := result.Grade()
	title := headerStyle.Render("test-readability")
	subtitle := dimStyle.Render("Test Readability Score")
	scoreLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100  %s", result.OverallScore, grade))
	counts := dimStyle.Render(fmt.Sprintf("Files analyzed: %d   Tests analyzed: %d", result.TotalFiles, result.TotalTests))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreLine + "\n" + counts))
	b.WriteString("\n\n")

	if len(result.Files) == 0 {
		b.WriteString("  " + warnStyle.Render("No test files found!") + "\n")
		return b.String()
	}

	// ── Files below threshold ──
	below := result.FilesBelow(opts.Threshold)
	if len(below) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Files below threshold (%d)", opts.Threshold)))
		b.WriteString("\n\n")
		for _, f := range below {
			renderFile(&b, f, opts)
		}
	} else {
		b.WriteString("  " + passStyle.Render(fmt.Sprintf("All %d files meet the threshold of %d.", result.TotalFiles, opts.Threshold)) + "\n\n")
	}

	b.WriteString("  " + separatorLine + "\n\n")

	// ── Distribution ──
	b.WriteString("  " + titleStyle.Render("Score Distribution") + "\n\n")
	for _, bucket := range result.Distribution() {
		label := padRight(fmt.Sprintf("%s (%d-%d)", bucket.Grade, bucket.Min, bucket.Max), 12)
		bar := lipgloss.NewStyle().Foreground(gradeColor(bucket.Grade)).
			Render(strings.Repeat("█", distributionBar(bucket.Count, result.TotalFiles)))
		fmt.Fprintf(&b, "    %s %s %d\n", dimStyle.Render(label), bar, bucket.Count)
	}
	b.WriteString("\n")

	// ── Criteria ──
	b.WriteString("  " + titleStyle.Render("Scoring Criteria") + "\n")
	for _, c := range criteria {
		fmt.Fprintf(&b, "    %s %s %s\n",
			dimStyle.Render("•"),
			padRight(fmt.Sprintf("%s (%d%%):", c.name, int(math.Round(c.weight*100))), 18),
			dimStyle.Render(c.hint),
		)
	}
	b.WriteString("\n")

	return b.String()
}

func renderFile(b *strings.Builder, f domain.FileRecord, opts domain.ReportOptions) {
	bar := frameStyle.Render("│")

	fmt.Fprintf(b, "  %s %s\n", frameStyle.Render("┌─"), fileStyle.Render(opts.RelPath(f.Path)))
	fmt.Fprintf(b, "  %s  Score: %s | Tests: %d | Lines: %d\n",
		bar, coloredScore(f.FileScore), f.TestCount, f.LineCount)

	if len(f.Suggestions) > 0 {
		fmt.Fprintf(b, "  %s\n", bar)
		for _, s := range f.Suggestions {
			fmt.Fprintf(b, "  %s  %s %s\n", bar, warnStyle.Render("›"), s)
		}
	}

	if opts.Verbose {
		if low := f.TestsBelow(opts.Threshold); len(low) > 0 {
			fmt.Fprintf(b, "  %s\n", bar)
			fmt.Fprintf(b, "  %s  %s\n", bar, titleStyle.Render("Tests needing attention:"))
			for _, t := range low {
				fmt.Fprintf(b, "  %s    • %q (line %d): %s\n", bar, t.Name, t.Line, coloredScore(t.OverallScore))
				for _, s := range firstN(t.Suggestions, 2) {
					fmt.Fprintf(b, "  %s      - %s\n", bar, dimStyle.Render(s))
				}
			}
		}
	}

	b.WriteString("  " + frameStyle.Render(frameBottomRaw) + "\n\n")
}

// distributionBar scales count against total onto distributionWidth cells,
// rounding up so any non-zero bucket is visible.
func distributionBar(count, total int) int {
	if total == 0 || count == 0 {
		return 0
	}
	return int(math.Ceil(float64(count) / float64(total) * distributionWidth))
}

func coloredScore(score int) string {
	return lipgloss.NewStyle().Foreground(scoreColor(score)).Render(fmt.Sprintf("%d/100", score))
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return warning
	default:
		return danger
	}
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats score history for terminal output.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No score history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Score History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Overall)).
			Render(fmt.Sprintf("%d/100", e.Overall))

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			lipgloss.NewStyle().Foreground(gradeColor(e.Grade)).Render(e.Grade),
			dimStyle.Render(fmt.Sprintf("%d files, %d tests", e.TotalFiles, e.TotalTests)),
		)

		if i > 0 {
			diff := e.Overall - entries[i-1].Overall
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
