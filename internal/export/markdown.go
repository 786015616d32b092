// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// frontmatter is the YAML header of a Markdown export.
type frontmatter struct {
	Title     string `yaml:"title"`
	Session   string `yaml:"session,omitempty"`
	Recipes   int    `yaml:"recipes"`
	Exported  string `yaml:"exported"`
	Generator string `yaml:"generator"`
}

// MarkdownExporter exports recipes to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts the recipes to Markdown.
func (e *MarkdownExporter) Export(recipes []api.SavedRecipe) ([]byte, error) {
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}

	var sb strings.Builder
	now := e.options.now()

	if e.options.IncludeMetadata {
		fm, err := yaml.Marshal(frontmatter{
			Title:     "My Recipes",
			Session:   e.options.SessionID,
			Recipes:   len(recipes),
			Exported:  now.Format(time.RFC3339),
			Generator: "cookbot",
		})
		if err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
		sb.WriteString("---\n")
		sb.Write(fm)
		sb.WriteString("---\n\n")
	}

	sb.WriteString("# My Recipes\n\n")

	for i, saved := range recipes {
		recipe := saved.Recipe
		writeRecipe(&sb, &recipe, "##")

		if e.options.IncludeMetadata {
			if at, ok := saved.SavedTime(); ok {
				fmt.Fprintf(&sb, "<sub>Saved %s</sub>\n\n", formatTimestamp(at))
			}
		}

		if i < len(recipes)-1 {
			sb.WriteString("---\n\n")
		}
	}

	fmt.Fprintf(&sb, "\n*Exported from CookBot on %s*\n", now.Format("January 2, 2006 at 3:04 PM"))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// RecipeMarkdown renders one recipe as a standalone Markdown document.
func RecipeMarkdown(recipe *model.Recipe) string {
	if recipe == nil {
		return ""
	}
	var sb strings.Builder
	writeRecipe(&sb, recipe, "#")
	return sb.String()
}

// writeRecipe renders recipe with its title at the given heading level.
// Sections use one level deeper.
func writeRecipe(sb *strings.Builder, recipe *model.Recipe, heading string) {
	fmt.Fprintf(sb, "%s %s\n\n", heading, escapeMarkdown(recipe.Title))

	if recipe.Description != "" {
		sb.WriteString(recipe.Description)
		sb.WriteString("\n\n")
	}

	if meta := formatMeta(recipe); meta != "" {
		sb.WriteString(meta)
		sb.WriteString("\n\n")
	}

	if len(recipe.Ingredients) > 0 {
		fmt.Fprintf(sb, "%s# Ingredients\n\n", heading)
		for _, item := range recipe.Ingredients {
			fmt.Fprintf(sb, "- %s\n", item)
		}
		sb.WriteString("\n")
	}

	if len(recipe.Instructions) > 0 {
		fmt.Fprintf(sb, "%s# Instructions\n\n", heading)
		for i, step := range recipe.Instructions {
			fmt.Fprintf(sb, "%d. %s\n", i+1, step)
		}
		sb.WriteString("\n")
	}
}

// formatMeta returns the bold timing/serving line, or "".
func formatMeta(recipe *model.Recipe) string {
	var parts []string
	if recipe.PrepTime != "" {
		parts = append(parts, fmt.Sprintf("**Prep:** %s", recipe.PrepTime))
	}
	if recipe.CookTime != "" {
		parts = append(parts, fmt.Sprintf("**Cook:** %s", recipe.CookTime))
	}
	if recipe.Servings != "" {
		parts = append(parts, fmt.Sprintf("**Serves:** %s", recipe.Servings))
	}
	return strings.Join(parts, " | ")
}

// =============================================================================
// ESCAPING HELPERS
// =============================================================================

// escapeMarkdown escapes characters that would break formatting in headings.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}
