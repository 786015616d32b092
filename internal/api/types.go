// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"github.com/jeranaias/cookbot-tui/internal/model"
)

// =============================================================================
// CHAT
// =============================================================================

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatReply is the decoded reply to a chat message. Recipe is non-nil only
// when IsRecipe is set and the payload passed validation.
type ChatReply struct {
	Response  string
	SessionID string
	IsRecipe  bool
	Recipe    *model.Recipe
}

// chatResponse is the wire form of ChatReply; recipe_data is decoded
// separately so a malformed payload can be downgraded instead of failing.
type chatResponse struct {
	Response   string          `json:"response"`
	SessionID  string          `json:"session_id"`
	IsRecipe   bool            `json:"is_recipe"`
	RecipeData json.RawMessage `json:"recipe_data,omitempty"`
}

// =============================================================================
// RECIPES
// =============================================================================

// SaveRecipeRequest is the body of POST /save_recipe.
type SaveRecipeRequest struct {
	SessionID  string        `json:"session_id"`
	RecipeData *model.Recipe `json:"recipe_data"`
}

// SaveResult is the reply to POST /save_recipe.
type SaveResult struct {
	Success  bool   `json:"success"`
	RecipeID string `json:"recipe_id"`
	Message  string `json:"message"`
}

// SavedRecipe is one entry of GET /my_recipes.
type SavedRecipe struct {
	RecipeID  string       `json:"recipe_id"`
	SessionID string       `json:"session_id"`
	Recipe    model.Recipe `json:"recipe_data"`
	SavedAt   string       `json:"saved_at"`
}

// savedAtLayouts are the timestamp forms the backend has been seen to send.
var savedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// SavedTime parses SavedAt. ok is false when the value is missing or in an
// unknown layout.
func (r SavedRecipe) SavedTime() (t time.Time, ok bool) {
	for _, layout := range savedAtLayouts {
		if parsed, err := time.Parse(layout, r.SavedAt); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// SavedRecipes is the reply to GET /my_recipes.
type SavedRecipes struct {
	Recipes []SavedRecipe `json:"recipes"`
}

// =============================================================================
// CONTACT
// =============================================================================

// ContactForm is the body of POST /contact.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Trimmed returns the form with surrounding whitespace removed.
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks that every field is present and the email parses.
func (f ContactForm) Validate() error {
	f = f.Trimmed()
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrFieldsRequired
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ContactResult is the reply to POST /contact.
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// =============================================================================
// HEALTH
// =============================================================================

// HealthStatus is the liveness payload of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Healthy reports whether the backend declared itself healthy.
func (h *HealthStatus) Healthy() bool {
	return h != nil && h.Status == "healthy"
}
