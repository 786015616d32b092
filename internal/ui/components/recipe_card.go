// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// DefaultCopiedReset is how long "Copied!" stays visible.
const DefaultCopiedReset = 2 * time.Second

// errNoSaver is reported when a card has nowhere to save to.
var errNoSaver = errors.New("no recipe saver configured")

// =============================================================================
// SAVE STATE
// =============================================================================

// SaveState is the lifecycle of a card's save action. SaveSaved is final.
type SaveState int

const (
	SaveUnsaved SaveState = iota
	SaveSaving
	SaveSaved
)

// String returns the button label for the state.
func (s SaveState) String() string {
	switch s {
	case SaveSaving:
		return "Saving..."
	case SaveSaved:
		return "Saved"
	default:
		return "Save Recipe"
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

// RecipeSaver persists a recipe for a session. *api.Client satisfies it.
type RecipeSaver interface {
	SaveRecipe(ctx context.Context, sessionID string, recipe *model.Recipe) (*api.SaveResult, error)
}

// RecipeSavedMsg reports the outcome of RecipeCard.Save.
type RecipeSavedMsg struct {
	CardID string
	Result *api.SaveResult
	Err    error
}

// CopiedResetMsg clears the "Copied!" indicator. Gen guards against an
// older timer clearing a newer copy.
type CopiedResetMsg struct {
	CardID string
	Gen    int
}

// =============================================================================
// RECIPE CARD
// =============================================================================

// RecipeCardOptions configures a RecipeCard.
type RecipeCardOptions struct {
	Saver     RecipeSaver
	SessionID string
	Logger    *zap.Logger

	// CopiedReset defaults to DefaultCopiedReset.
	CopiedReset time.Duration

	// WriteClipboard defaults to clipboard.WriteAll.
	WriteClipboard func(string) error
}

// RecipeCard renders a recipe and owns its save and copy actions.
type RecipeCard struct {
	ID      string
	Recipe  *model.Recipe
	Focused bool
	Width   int

	saver          RecipeSaver
	sessionID      string
	logger         *zap.Logger
	copiedReset    time.Duration
	writeClipboard func(string) error
	theme          *styles.Theme

	saveState SaveState
	recipeID  string
	copied    bool
	copyGen   int
	static    bool
}

// NewRecipeCard creates a card for recipe. id must be unique among the
// cards on screen; the owning message ID is a good choice.
func NewRecipeCard(id string, recipe *model.Recipe, theme *styles.Theme, opts RecipeCardOptions) *RecipeCard {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reset := opts.CopiedReset
	if reset <= 0 {
		reset = DefaultCopiedReset
	}
	write := opts.WriteClipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	return &RecipeCard{
		ID:             id,
		Recipe:         recipe,
		Width:          80,
		saver:          opts.Saver,
		sessionID:      opts.SessionID,
		logger:         logger.Named("recipe_card"),
		copiedReset:    reset,
		writeClipboard: write,
		theme:          theme,
	}
}

// SetWidth updates the available width.
func (c *RecipeCard) SetWidth(width int) {
	c.Width = width
}

// SetTheme swaps the theme after a toggle.
func (c *RecipeCard) SetTheme(theme *styles.Theme) {
	c.theme = theme
}

// SaveState returns the current save state.
func (c *RecipeCard) SaveState() SaveState {
	return c.saveState
}

// RecipeID returns the backend ID once saved.
func (c *RecipeCard) RecipeID() string {
	return c.recipeID
}

// Copied reports whether the "Copied!" indicator is showing.
func (c *RecipeCard) Copied() bool {
	return c.copied
}

// Save starts saving the recipe. It is a no-op unless the card is
// unsaved, so repeated presses never reach the transport twice.
func (c *RecipeCard) Save() tea.Cmd {
	if c.saveState != SaveUnsaved {
		return nil
	}
	c.saveState = SaveSaving

	id, saver, sessionID, recipe := c.ID, c.saver, c.sessionID, c.Recipe.Clone()
	return func() tea.Msg {
		if saver == nil {
			return RecipeSavedMsg{CardID: id, Err: errNoSaver}
		}
		res, err := saver.SaveRecipe(context.Background(), sessionID, recipe)
		return RecipeSavedMsg{CardID: id, Result: res, Err: err}
	}
}

// Copy writes the ingredients to the clipboard and shows "Copied!" until
// the reset delay passes. Clipboard failures are logged only.
func (c *RecipeCard) Copy() tea.Cmd {
	if err := c.writeClipboard(c.Recipe.IngredientsText()); err != nil {
		c.logger.Warn("failed to copy ingredients",
			zap.String("recipe", c.Recipe.Title),
			zap.Error(err))
		return nil
	}

	c.copied = true
	c.copyGen++
	id, gen := c.ID, c.copyGen
	return tea.Tick(c.copiedReset, func(time.Time) tea.Msg {
		return CopiedResetMsg{CardID: id, Gen: gen}
	})
}

// Update applies save and copy results addressed to this card.
func (c *RecipeCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RecipeSavedMsg:
		if msg.CardID != c.ID || c.saveState != SaveSaving {
			return nil
		}
		if msg.Err != nil {
			c.logger.Warn("failed to save recipe",
				zap.String("recipe", c.Recipe.Title),
				zap.String("reason", api.ErrorMessage(msg.Err)),
				zap.Error(msg.Err))
			c.saveState = SaveUnsaved
			return nil
		}
		c.saveState = SaveSaved
		if msg.Result != nil {
			c.recipeID = msg.Result.RecipeID
		}
		c.logger.Info("recipe saved",
			zap.String("recipe", c.Recipe.Title),
			zap.String("recipe_id", c.recipeID))

	case CopiedResetMsg:
		if msg.CardID == c.ID && msg.Gen == c.copyGen {
			c.copied = false
		}
	}
	return nil
}

// View renders the card.
func (c *RecipeCard) View() string {
	t := c.theme
	r := c.Recipe
	width := clampWidth(c.Width, 30)
	inner := width - t.RecipeCard.GetHorizontalFrameSize()

	var b strings.Builder

	b.WriteString(t.RecipeTitle.Render(hangingWrap("", r.Title, inner)))
	if r.Description != "" {
		b.WriteString("\n")
		b.WriteString(t.RecipeDescription.Render(hangingWrap("", r.Description, inner)))
	}
	if meta := recipeMeta(r); meta != "" {
		b.WriteString("\n")
		b.WriteString(t.RecipeMeta.Render(meta))
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n\n")
		b.WriteString(t.RecipeSection.Render("Ingredients"))
		switch {
		case c.static:
		case c.copied:
			b.WriteString("  " + t.SuccessStyle.Render("Copied!"))
		default:
			b.WriteString("  " + t.Muted.Render("ctrl+y Copy"))
		}
		for _, ing := range r.Ingredients {
			b.WriteString("\n")
			b.WriteString(t.RecipeItem.Render(hangingWrap("  • ", ing, inner)))
		}
	}

	if len(r.Instructions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(t.RecipeSection.Render("Instructions"))
		for i, step := range r.Instructions {
			b.WriteString("\n")
			b.WriteString(t.RecipeItem.Render(hangingWrap("  "+strconv.Itoa(i+1)+". ", step, inner)))
		}
	}

	if !c.static {
		b.WriteString("\n\n")
		b.WriteString(c.saveButton())
	}

	card := t.RecipeCard
	if c.Focused {
		card = card.BorderForeground(styles.Tomato)
	}
	return card.Width(inner + card.GetHorizontalPadding()).Render(b.String())
}

func (c *RecipeCard) saveButton() string {
	t := c.theme
	switch c.saveState {
	case SaveSaving:
		return t.ButtonDisabled.Render(c.saveState.String())
	case SaveSaved:
		return t.ButtonActive.Render(c.saveState.String())
	default:
		return t.Button.Render("ctrl+s " + c.saveState.String())
	}
}

// recipeMeta builds the "Prep: ... Cook: ... Serves: ..." line from the
// fields that are present.
func recipeMeta(r *model.Recipe) string {
	var parts []string
	if r.PrepTime != "" {
		parts = append(parts, "Prep: "+r.PrepTime.String())
	}
	if r.CookTime != "" {
		parts = append(parts, "Cook: "+r.CookTime.String())
	}
	if r.Servings != "" {
		parts = append(parts, "Serves: "+r.Servings.String())
	}
	return strings.Join(parts, "   ")
}

// RenderRecipe renders recipe as a static card with no actions, for
// non-interactive output.
func RenderRecipe(recipe *model.Recipe, theme *styles.Theme, width int) string {
	c := NewRecipeCard("static", recipe, theme, RecipeCardOptions{})
	c.SetWidth(width)
	c.static = true
	return c.View()
}
