// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders saved recipes for use outside the TUI.
//
// # Supported Formats
//
//   - Markdown: one section per recipe, with YAML frontmatter
//   - JSON: the recipes as returned by the backend, plus export metadata
//
// # Usage
//
//	exporter, err := export.New(export.FormatMarkdown, nil)
//	path, err := export.ExportToFile(recipes, exporter, opts)
//
// RecipeMarkdown renders a single recipe and is what `cookbot ask` feeds to
// glamour.
package export
