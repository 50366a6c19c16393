// Package report writes a scored assessment to a file for sharing.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/contentquiz/internal/scoring"
)

// Format selects an exporter.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatXLSX     Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatXLSX}

// ParseFormat accepts a format name, case-insensitive. "markdown" is an
// alias for md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown report format %q (want md, json or xlsx)", s)
}

// FormatFromPath infers the format from a file extension, defaulting to
// Markdown.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".xlsx":
		return FormatXLSX
	}
	return FormatMarkdown
}

// Document is what gets exported: the scored report plus context.
type Document struct {
	Report         scoring.Report
	CatalogVersion string
	Advice         string
	GeneratedAt    time.Time
}

// Write renders doc in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatXLSX:
		return WriteXLSX(w, doc)
	}
	return fmt.Errorf("unknown report format %q", format)
}

// Export writes doc to path. An empty format is inferred from the path.
func Export(path string, format Format, doc Document) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Write(f, format, doc); err != nil {
		f.Close()
		return fmt.Errorf("write %s report: %w", format, err)
	}
	return f.Close()
}

// DefaultFileName returns a timestamped file name for format.
func DefaultFileName(format Format, now time.Time) string {
	return fmt.Sprintf("content-plan-report-%s.%s", now.Format("20060102-150405"), format)
}
