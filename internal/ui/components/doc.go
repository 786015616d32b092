// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the cookbot TUI.

Components are built on Bubble Tea and Lip Gloss and take a *styles.Theme at
construction so the whole screen restyles when the theme is toggled.

# Core Components

  - Header (header.go) - Brand, navigation tabs and theme indicator.
  - Footer (footer.go) - Shortcut hints, status line and copyright.
  - Welcome (welcome.go) - Home screen with example prompts.
  - TypingIndicator (spinner.go) - Animated "CookBot is typing" line.
  - MessageBubble (message.go) - Text bubbles for chat messages.
  - RecipeCard (recipe_card.go) - Structured recipe with save and copy actions.

# Recipe Card Actions

Each RecipeCard owns its own save and copy state. Actions return a tea.Cmd
and report back through RecipeSavedMsg and CopiedResetMsg, which the
owning screen routes to the card with the matching CardID:

	card := components.NewRecipeCard(msg.ID, msg.Recipe, theme, components.RecipeCardOptions{
	    Saver:     client,
	    SessionID: sessionID,
	})
	cmd := card.Save()
*/
package components
