// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles a message for the chat screen.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case components.RecipeSavedMsg:
		if card, ok := m.cards[msg.CardID]; ok {
			card.Update(msg)
			m.refresh()
		}
		return nil

	case components.CopiedResetMsg:
		if card, ok := m.cards[msg.CardID]; ok {
			card.Update(msg)
			m.refresh()
		}
		return nil

	case SavedRecipesMsg:
		return m.handleSavedRecipes(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		m.refreshFooterLines()
		return cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.Submit(m.input.Value())

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return nil

	case key.Matches(msg, m.keys.SaveRecipe):
		if card := m.FocusedCard(); card != nil {
			cmd := card.Save()
			m.refresh()
			return cmd
		}
		return nil

	case key.Matches(msg, m.keys.CopyRecipe):
		if card := m.FocusedCard(); card != nil {
			cmd := card.Copy()
			m.refresh()
			return cmd
		}
		return nil

	case key.Matches(msg, m.keys.PrevCard):
		m.setFocus(m.focusedCard - 1)
		m.refresh()
		return nil

	case key.Matches(msg, m.keys.NextCard):
		m.setFocus(m.focusedCard + 1)
		m.refresh()
		return nil

	case key.Matches(msg, m.keys.SavedRecipes):
		return m.listSavedRecipes()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleReply(msg ReplyMsg) tea.Cmd {
	if !m.ctrl.Resolve(msg.Result) {
		return nil
	}
	if !m.ctrl.InFlight() {
		m.typing.Stop()
	}
	m.refresh()
	m.viewport.GotoBottom()
	return nil
}

func (m *Model) handleSavedRecipes(msg SavedRecipesMsg) tea.Cmd {
	if msg.SessionID != m.ctrl.SessionID() {
		return nil
	}

	status := StatusMsg{}
	switch {
	case msg.Err != nil:
		m.logger.Info("listing saved recipes failed", zap.Error(msg.Err))
		status = StatusMsg{Text: api.ErrorMessage(msg.Err), IsError: true}
	case msg.Recipes == nil || len(msg.Recipes.Recipes) == 0:
		status.Text = "No saved recipes yet."
	default:
		status.Text = summarizeSaved(msg.Recipes.Recipes)
	}
	return func() tea.Msg { return status }
}

// summarizeSaved renders "N saved recipes: a, b, c" for the status line.
func summarizeSaved(recipes []api.SavedRecipe) string {
	titles := make([]string, 0, len(recipes))
	for _, r := range recipes {
		titles = append(titles, r.Recipe.Title)
	}
	noun := "recipes"
	if len(recipes) == 1 {
		noun = "recipe"
	}
	return fmt.Sprintf("%d saved %s: %s", len(recipes), noun, strings.Join(titles, ", "))
}
