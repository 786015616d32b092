// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN
// =============================================================================

// ExamplePrompts are the suggestions offered on the home screen.
var ExamplePrompts = []string{
	"What can I make with chicken and rice?",
	"Give me a recipe for chocolate cake",
	"How do I make pasta from scratch?",
	"Quick dinner ideas for two people",
	"Vegetarian recipes under 30 minutes",
	"What's a good substitute for eggs in baking?",
}

// Feature is one highlight shown on the home screen.
type Feature struct {
	Title       string
	Description string
}

// Features are the home screen highlights.
var Features = []Feature{
	{"Natural Conversation", "Chat naturally about cooking, ingredients, and techniques"},
	{"Personalized Recipes", "Get recipes tailored to your preferences and dietary needs"},
	{"Quick Solutions", "Find fast answers to cooking questions and ingredient substitutions"},
	{"All Skill Levels", "Whether you're a beginner or expert, get help at your level"},
}

// Welcome is the home screen. Index -1 selects the "Start Cooking
// Together" action; 0..len(Prompts)-1 select an example prompt.
type Welcome struct {
	Prompts  []string
	selected int
	width    int
	height   int
	theme    *styles.Theme
}

// NewWelcome creates the home screen with the default prompts.
func NewWelcome(theme *styles.Theme) *Welcome {
	return &Welcome{
		Prompts:  ExamplePrompts,
		selected: -1,
		width:    80,
		theme:    theme,
	}
}

// SetSize updates the available area.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// SetTheme swaps the theme after a toggle.
func (w *Welcome) SetTheme(theme *styles.Theme) {
	w.theme = theme
}

// MoveUp moves the selection up, stopping at the start action.
func (w *Welcome) MoveUp() {
	if w.selected > -1 {
		w.selected--
	}
}

// MoveDown moves the selection down, stopping at the last prompt.
func (w *Welcome) MoveDown() {
	if w.selected < len(w.Prompts)-1 {
		w.selected++
	}
}

// Selected returns the chosen prompt, or "" when the start action is
// selected.
func (w *Welcome) Selected() string {
	if w.selected < 0 || w.selected >= len(w.Prompts) {
		return ""
	}
	return w.Prompts[w.selected]
}

// SelectedIndex returns the selection index (-1 for the start action).
func (w *Welcome) SelectedIndex() int {
	return w.selected
}

// View renders the home screen.
func (w *Welcome) View() string {
	t := w.theme
	width := clampWidth(w.width, 40)
	compact := width < 70

	var b strings.Builder
	b.WriteString(t.WelcomeSubtitle.Render("Welcome to"))
	b.WriteString("\n")
	b.WriteString(t.WelcomeTitle.Render("CookBot"))
	b.WriteString("\n\n")
	b.WriteString(t.WelcomeSubtitle.Render(hangingWrap("",
		"Your digital sous chef is ready to help! Get personalized recipes, smart cooking tips, "+
			"and answers to all your culinary questions. Let's start cooking together.", width-4)))
	b.WriteString("\n\n")

	start := "Start Cooking Together"
	if w.selected == -1 {
		b.WriteString(t.ButtonActive.Render("> " + start))
	} else {
		b.WriteString(t.Button.Render("  " + start))
	}
	b.WriteString("\n")

	if !compact {
		b.WriteString("\n")
		for _, f := range Features {
			b.WriteString(t.RecipeSection.Render(f.Title))
			b.WriteString("  ")
			b.WriteString(t.Muted.Render(f.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(t.FieldLabel.Render("Try asking me..."))
	b.WriteString("\n")
	for i, p := range w.Prompts {
		line := "\"" + p + "\""
		if i == w.selected {
			b.WriteString(t.PromptSelected.Render("> " + line))
		} else {
			b.WriteString(t.PromptItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	if w.height > 0 && lipgloss.Height(content) < w.height {
		return lipgloss.Place(width, w.height, lipgloss.Center, lipgloss.Top, content)
	}
	return content
}
