// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/cookbot-tui/internal/api"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports recipes as JSON. The recipes keep the backend's wire
// shape so the file can be posted back to /save_recipe.
type JSONExporter struct {
	options *Options
}

// jsonExport is the document written by JSONExporter.
type jsonExport struct {
	Generator string            `json:"generator"`
	Exported  time.Time         `json:"exported"`
	SessionID string            `json:"session_id,omitempty"`
	Count     int               `json:"count"`
	Recipes   []api.SavedRecipe `json:"recipes"`
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// Export converts the recipes to indented JSON.
func (e *JSONExporter) Export(recipes []api.SavedRecipe) ([]byte, error) {
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}

	data, err := json.MarshalIndent(jsonExport{
		Generator: "cookbot",
		Exported:  e.options.now().UTC(),
		SessionID: e.options.SessionID,
		Count:     len(recipes),
		Recipes:   recipes,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
