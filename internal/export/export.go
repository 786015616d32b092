// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/util"
)

// ErrNoRecipes is returned when there is nothing to export.
var ErrNoRecipes = errors.New("no saved recipes to export")

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts saved recipes into one output format.
type Exporter interface {
	// Export renders the recipes and returns the content.
	Export(recipes []api.SavedRecipe) ([]byte, error)

	// FileExtension returns the file extension, including the dot.
	FileExtension() string

	// MimeType returns the MIME type of the output.
	MimeType() string
}

// Format names an export format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// ParseFormat accepts the names used on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q (use md or json)", s)
	}
}

// New returns the exporter for format.
func New(format Format, opts *Options) (Exporter, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownExporter(opts), nil
	case FormatJSON:
		return NewJSONExporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is where ExportToFile writes. Default: current directory.
	OutputDir string

	// IncludeMetadata adds frontmatter and per-recipe saved times.
	IncludeMetadata bool

	// SessionID is recorded in the metadata and the default file name.
	SessionID string

	// Now overrides the export timestamp.
	Now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
	}
}

func (o *Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// Write renders recipes to w.
func Write(w io.Writer, recipes []api.SavedRecipe, exporter Exporter) error {
	content, err := exporter.Export(recipes)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ExportToFile renders recipes to a generated file name under
// opts.OutputDir and returns the path written.
func ExportToFile(recipes []api.SavedRecipe, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(opts.SessionID, opts.now(), exporter))
	return path, ExportToPath(recipes, exporter, path)
}

// ExportToPath renders recipes to an explicit path.
func ExportToPath(recipes []api.SavedRecipe, exporter Exporter, path string) error {
	content, err := exporter.Export(recipes)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := util.AtomicWriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// FileName builds the default export file name.
func FileName(sessionID string, at time.Time, exporter Exporter) string {
	return fmt.Sprintf("recipes_%s_%s%s",
		sanitizeFilename(sessionID),
		at.Format("20060102_150405"),
		exporter.FileExtension(),
	)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename removes or replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	runes := []rune(s)
	if len(runes) > 50 {
		runes = runes[:50]
	}

	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			out = append(out, '-')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			out = append(out, '_')
		case r < 32 || r == 127:
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}

	if len(out) == 0 {
		return "cookbot"
	}
	return string(out)
}

// formatTimestamp formats a timestamp for display.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
