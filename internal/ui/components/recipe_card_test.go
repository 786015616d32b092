// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

type fakeSaver struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSaver) SaveRecipe(ctx context.Context, sessionID string, recipe *model.Recipe) (*api.SaveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &api.SaveResult{Success: true, RecipeID: "r-1"}, nil
}

func (f *fakeSaver) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func stirFry() *model.Recipe {
	return &model.Recipe{
		Title:        "Stir Fry",
		Description:  "Fast weeknight dinner",
		Ingredients:  []string{"2 cups rice", "1 lb chicken"},
		Instructions: []string{"Cook rice", "Brown chicken", "Combine"},
		PrepTime:     "10 min",
		Servings:     "4",
	}
}

func TestRecipeCard_View(t *testing.T) {
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{})
	card.SetWidth(80)
	view := card.View()

	assert.Contains(t, view, "Stir Fry")
	assert.Contains(t, view, "Fast weeknight dinner")
	assert.Contains(t, view, "Prep: 10 min")
	assert.Contains(t, view, "Serves: 4")
	assert.NotContains(t, view, "Cook:")
	assert.Equal(t, 2, strings.Count(view, "• "))
	assert.Contains(t, view, "1. Cook rice")
	assert.Contains(t, view, "2. Brown chicken")
	assert.Contains(t, view, "3. Combine")
	assert.NotContains(t, view, "4. ")
	assert.Contains(t, view, "Save Recipe")
}

func TestRecipeCard_ViewTitleOnly(t *testing.T) {
	card := NewRecipeCard("m1", &model.Recipe{Title: "Toast"}, testTheme(), RecipeCardOptions{})
	card.SetWidth(80)
	view := card.View()

	assert.Contains(t, view, "Toast")
	assert.NotContains(t, view, "Ingredients")
	assert.NotContains(t, view, "Instructions")
	assert.NotContains(t, view, "1. ")
	assert.Contains(t, view, "Save Recipe")
}

func TestRecipeCard_SaveTransitions(t *testing.T) {
	saver := &fakeSaver{}
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{Saver: saver, SessionID: "s1"})

	assert.Equal(t, SaveUnsaved, card.SaveState())

	cmd := card.Save()
	require.NotNil(t, cmd)
	assert.Equal(t, SaveSaving, card.SaveState())
	assert.Nil(t, card.Save(), "save while saving is a no-op")

	card.Update(cmd())
	assert.Equal(t, SaveSaved, card.SaveState())
	assert.Equal(t, "r-1", card.RecipeID())
	assert.Equal(t, 1, saver.Calls())

	assert.Nil(t, card.Save(), "save while saved is a no-op")
	assert.Equal(t, 1, saver.Calls())
	assert.Contains(t, card.View(), "Saved")
}

func TestRecipeCard_SaveFailureReverts(t *testing.T) {
	saver := &fakeSaver{err: errors.New("boom")}
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{Saver: saver})

	card.Update(card.Save()())
	assert.Equal(t, SaveUnsaved, card.SaveState())

	saver.err = nil
	card.Update(card.Save()())
	assert.Equal(t, SaveSaved, card.SaveState())
	assert.Equal(t, 2, saver.Calls())
}

func TestRecipeCard_IgnoresOtherCards(t *testing.T) {
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{Saver: &fakeSaver{}})
	card.Save()

	card.Update(RecipeSavedMsg{CardID: "m2"})
	assert.Equal(t, SaveSaving, card.SaveState())
}

func TestRecipeCard_NoSaverReverts(t *testing.T) {
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{})
	card.Update(card.Save()())
	assert.Equal(t, SaveUnsaved, card.SaveState())
}

func TestRecipeCard_Copy(t *testing.T) {
	var copied string
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{
		CopiedReset: time.Millisecond,
		WriteClipboard: func(s string) error {
			copied = s
			return nil
		},
	})

	first := card.Copy()
	require.NotNil(t, first)
	assert.Equal(t, "2 cups rice\n1 lb chicken", copied)
	assert.True(t, card.Copied())
	assert.Contains(t, card.View(), "Copied!")

	second := card.Copy()
	require.NotNil(t, second)

	// The first timer must not clear the newer copy.
	card.Update(first())
	assert.True(t, card.Copied())

	card.Update(second())
	assert.False(t, card.Copied())
}

func TestRecipeCard_CopyFailureIsSilent(t *testing.T) {
	card := NewRecipeCard("m1", stirFry(), testTheme(), RecipeCardOptions{
		WriteClipboard: func(string) error { return errors.New("no clipboard") },
	})

	assert.Nil(t, card.Copy())
	assert.False(t, card.Copied())
}

func TestRenderRecipe_Static(t *testing.T) {
	view := RenderRecipe(stirFry(), testTheme(), 80)
	assert.Contains(t, view, "Stir Fry")
	assert.NotContains(t, view, "Save Recipe")
	assert.NotContains(t, view, "Copy")
}
