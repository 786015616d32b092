// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cookbot-tui/internal/ui/components"
	"github.com/jeranaias/cookbot-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat screen: the conversation, any error, the typing
// indicator and the input.
func (m *Model) View() string {
	parts := []string{m.viewport.View()}
	if lines := m.statusLines(); lines != "" {
		parts = append(parts, lines)
	}
	parts = append(parts, m.theme.InputContainer.Width(m.width).Render(m.input.View()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// refresh re-renders the conversation into the viewport and resizes it to
// fit the space left by the input and status lines.
func (m *Model) refresh() {
	m.syncCards()
	m.refreshFooterLines()
	m.viewport.SetContent(m.renderConversation())
}

// refreshFooterLines resizes the viewport around the lines below it.
func (m *Model) refreshFooterLines() {
	below := lipgloss.Height(m.theme.InputContainer.Render(m.input.View()))
	if lines := m.statusLines(); lines != "" {
		below += lipgloss.Height(lines)
	}

	h := m.height - below
	if h < 3 {
		h = 3
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.Width = m.width
	m.viewport.Height = h
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// statusLines renders the error banner and typing indicator.
func (m *Model) statusLines() string {
	var lines []string
	if msg := m.ctrl.ErrorMessage(); msg != "" {
		lines = append(lines, m.theme.ErrorBanner.Render(util.Wrap(msg, m.width-4)))
	}
	if v := m.typing.View(); v != "" {
		lines = append(lines, v)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderConversation() string {
	msgs := m.ctrl.Messages()
	if len(msgs) == 0 {
		return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
			m.theme.EmptyState.Render(EmptyState))
	}

	blocks := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if msg.ShowsRecipeCard() {
			if card, ok := m.cards[msg.ID]; ok {
				card.SetWidth(m.width - 2)
				blocks = append(blocks, card.View())
				continue
			}
		}
		blocks = append(blocks, components.RenderMessage(msg, m.theme, m.width))
	}
	return strings.Join(blocks, "\n\n")
}
