// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingTitle rejects a recipe payload without a title.
var ErrMissingTitle = errors.New("recipe has no title")

// RecipeType is the discriminator the backend puts in recipe_data.type.
const RecipeType = "recipe"

// Recipe is the structured payload of a recipe-flagged reply.
// Title is required; Ingredients and Instructions are ordered lists;
// everything else is optional free text.
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`

	Description string   `json:"description,omitempty"`
	PrepTime    FlexText `json:"prep_time,omitempty"`
	CookTime    FlexText `json:"cook_time,omitempty"`
	Servings    FlexText `json:"servings,omitempty"`
}

// MarshalJSON adds the "type":"recipe" tag the backend expects.
func (r Recipe) MarshalJSON() ([]byte, error) {
	type plain Recipe
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{Type: RecipeType, plain: plain(r)})
}

// UnmarshalJSON accepts recipe_data with or without the type tag.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	var w struct {
		Type string `json:"type"`
		plain
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type != "" && w.Type != RecipeType {
		return fmt.Errorf("unexpected recipe type %q", w.Type)
	}
	*r = Recipe(w.plain)
	return nil
}

// Normalize trims every field and drops blank list entries.
func (r *Recipe) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.PrepTime = FlexText(strings.TrimSpace(string(r.PrepTime)))
	r.CookTime = FlexText(strings.TrimSpace(string(r.CookTime)))
	r.Servings = FlexText(strings.TrimSpace(string(r.Servings)))
	r.Ingredients = compact(r.Ingredients)
	r.Instructions = compact(r.Instructions)
}

// Validate normalizes the recipe and checks the required attributes. Only
// the title is required; empty lists are valid.
func (r *Recipe) Validate() error {
	if r == nil {
		return ErrMissingTitle
	}
	r.Normalize()
	if r.Title == "" {
		return ErrMissingTitle
	}
	return nil
}

// IngredientsText returns the ingredients one per line, as copied to the
// clipboard.
func (r *Recipe) IngredientsText() string {
	return strings.Join(r.Ingredients, "\n")
}

// HasMeta reports whether any timing or serving field is set.
func (r *Recipe) HasMeta() bool {
	return r.PrepTime != "" || r.CookTime != "" || r.Servings != ""
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	return &c
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// FLEX TEXT
// =============================================================================

// FlexText is free text that also accepts a bare JSON number, so
// "servings": 4 and "servings": "4 servings" both decode.
type FlexText string

// UnmarshalJSON implements json.Unmarshaler.
func (t *FlexText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = FlexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	if i, err := n.Int64(); err == nil {
		*t = FlexText(strconv.FormatInt(i, 10))
		return nil
	}
	*t = FlexText(n.String())
	return nil
}

// String returns the text.
func (t FlexText) String() string {
	return string(t)
}
