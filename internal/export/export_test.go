// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func testOptions(dir string) *Options {
	return &Options{
		OutputDir:       dir,
		IncludeMetadata: true,
		SessionID:       "session_123",
		Now:             func() time.Time { return fixedNow },
	}
}

func sampleRecipes() []api.SavedRecipe {
	return []api.SavedRecipe{
		{
			RecipeID:  "r1",
			SessionID: "session_123",
			SavedAt:   "2025-03-14T09:00:00Z",
			Recipe: model.Recipe{
				Title:        "Stir Fry",
				Description:  "Quick weeknight dinner",
				PrepTime:     "10 min",
				CookTime:     "15 min",
				Servings:     "2",
				Ingredients:  []string{"rice", "chicken"},
				Instructions: []string{"Cook rice", "Brown chicken", "Combine"},
			},
		},
		{
			RecipeID:  "r2",
			SessionID: "session_123",
			Recipe: model.Recipe{
				Title:       "Toast_with #Jam",
				Ingredients: []string{"bread", "jam"},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"md", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{" json ", FormatJSON, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdownExporter(t *testing.T) {
	out, err := NewMarkdownExporter(testOptions("")).Export(sampleRecipes())
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "---\ntitle: My Recipes\n"))
	assert.Contains(t, md, "session: session_123\n")
	assert.Contains(t, md, "recipes: 2\n")
	assert.Contains(t, md, "## Stir Fry\n\nQuick weeknight dinner\n\n")
	assert.Contains(t, md, "**Prep:** 10 min | **Cook:** 15 min | **Serves:** 2")
	assert.Contains(t, md, "### Ingredients\n\n- rice\n- chicken\n")
	assert.Contains(t, md, "### Instructions\n\n1. Cook rice\n2. Brown chicken\n3. Combine\n")
	assert.Contains(t, md, "<sub>Saved 2025-03-14 09:00:00</sub>")
	assert.Contains(t, md, `## Toast\_with \#Jam`)
	assert.NotContains(t, md, "### Instructions\n\n1. bread")
	assert.Contains(t, md, "*Exported from CookBot on March 14, 2025 at 9:30 AM*")
}

func TestMarkdownExporter_FrontmatterRoundTrips(t *testing.T) {
	for _, session := range []string{"- a", "true", "null", "a: b # c", "session_123"} {
		t.Run(session, func(t *testing.T) {
			opts := testOptions("")
			opts.SessionID = session

			out, err := NewMarkdownExporter(opts).Export(sampleRecipes())
			require.NoError(t, err)

			md := string(out)
			require.True(t, strings.HasPrefix(md, "---\n"))
			end := strings.Index(md[4:], "\n---\n")
			require.GreaterOrEqual(t, end, 0, "frontmatter not terminated")

			var fm map[string]any
			require.NoError(t, yaml.Unmarshal([]byte(md[4:4+end+1]), &fm))
			assert.Equal(t, session, fm["session"])
			assert.Equal(t, "My Recipes", fm["title"])
			assert.Equal(t, 2, fm["recipes"])
			assert.Equal(t, "cookbot", fm["generator"])
		})
	}
}

func TestMarkdownExporter_NoMetadata(t *testing.T) {
	opts := testOptions("")
	opts.IncludeMetadata = false

	out, err := NewMarkdownExporter(opts).Export(sampleRecipes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "# My Recipes\n"))
	assert.NotContains(t, string(out), "<sub>Saved")
}

func TestExport_Empty(t *testing.T) {
	_, err := NewMarkdownExporter(nil).Export(nil)
	assert.ErrorIs(t, err, ErrNoRecipes)

	_, err = NewJSONExporter(nil).Export([]api.SavedRecipe{})
	assert.ErrorIs(t, err, ErrNoRecipes)
}

func TestJSONExporter_KeepsWireShape(t *testing.T) {
	recipes := sampleRecipes()
	out, err := NewJSONExporter(testOptions("")).Export(recipes)
	require.NoError(t, err)

	var doc struct {
		Generator string            `json:"generator"`
		Exported  time.Time         `json:"exported"`
		SessionID string            `json:"session_id"`
		Count     int               `json:"count"`
		Recipes   []api.SavedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "cookbot", doc.Generator)
	assert.True(t, fixedNow.Equal(doc.Exported))
	assert.Equal(t, 2, doc.Count)
	if diff := cmp.Diff(recipes, doc.Recipes); diff != "" {
		t.Errorf("recipes mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, string(out), `"type": "recipe"`)
}

func TestRecipeMarkdown(t *testing.T) {
	r := sampleRecipes()[0].Recipe
	md := RecipeMarkdown(&r)

	assert.True(t, strings.HasPrefix(md, "# Stir Fry\n"))
	assert.Contains(t, md, "## Ingredients\n")
	assert.Contains(t, md, "## Instructions\n")
	assert.Empty(t, RecipeMarkdown(nil))
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(filepath.Join(dir, "out"))

	exporter, err := New(FormatMarkdown, opts)
	require.NoError(t, err)

	path, err := ExportToFile(sampleRecipes(), exporter, opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "recipes_session_123_20250314_093000.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Stir Fry")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRecipes(), NewJSONExporter(testOptions(""))))
	assert.True(t, json.Valid(buf.Bytes()))

	err := Write(&buf, nil, NewJSONExporter(nil))
	assert.ErrorIs(t, err, ErrNoRecipes)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "cookbot", sanitizeFilename(""))
	assert.Equal(t, "a-b-c_d", sanitizeFilename("a/b:c d"))
	assert.Len(t, []rune(sanitizeFilename(strings.Repeat("x", 80))), 50)
}
