// Package report renders analysis results as text, JSON or HTML.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/openkraft/readability/internal/adapters/outbound/tui"
	"github.com/openkraft/readability/internal/domain"
)

// Meta is run information that is not part of the analysis itself.
type Meta struct {
	GeneratedAt time.Time
	Commit      string
}

// Render writes result to w in the format selected by opts.
func Render(w io.Writer, result *domain.ProjectResult, opts domain.ReportOptions, meta Meta) error {
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now()
	}

	switch opts.Format {
	case domain.FormatJSON:
		return writeJSON(w, result, opts, meta)
	case domain.FormatHTML:
		return writeHTML(w, result, opts, meta)
	case domain.FormatText, "":
		_, err := io.WriteString(w, tui.RenderReport(result, opts))
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}
