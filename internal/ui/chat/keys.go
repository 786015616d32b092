// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the chat screen. The text input
// always has focus, so actions use control keys.
type KeyMap struct {
	Submit       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	SaveRecipe   key.Binding
	CopyRecipe   key.Binding
	PrevCard     key.Binding
	NextCard     key.Binding
	SavedRecipes key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		SaveRecipe: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save recipe"),
		),
		CopyRecipe: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy ingredients"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "previous recipe"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "next recipe"),
		),
		SavedRecipes: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "my recipes"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SaveRecipe, k.CopyRecipe, k.SavedRecipes}
}

// FullHelp returns all bindings grouped for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.PageUp, k.PageDown},
		{k.SaveRecipe, k.CopyRecipe, k.PrevCard, k.NextCard},
		{k.SavedRecipes},
	}
}

// setCardBindings enables the recipe shortcuts only when a card exists.
func (k *KeyMap) setCardBindings(enabled bool) {
	k.SaveRecipe.SetEnabled(enabled)
	k.CopyRecipe.SetEnabled(enabled)
	k.PrevCard.SetEnabled(enabled)
	k.NextCard.SetEnabled(enabled)
}
