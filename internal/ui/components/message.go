// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cookbot-tui/internal/model"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
	"github.com/jeranaias/cookbot-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE
// =============================================================================

// MessageBubble renders a text message. Messages that show a recipe card
// are rendered by RecipeCard instead.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for msg.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth updates the available width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the bubble. User messages sit on the right, assistant
// messages on the left.
func (b *MessageBubble) View() string {
	t := b.theme
	width := clampWidth(b.Width, 30)

	style := t.AssistantBubble
	align := lipgloss.Left
	if b.Message.IsUser() {
		style = t.UserBubble
		align = lipgloss.Right
	}

	maxContent := width - style.GetHorizontalFrameSize() - 2
	if maxContent < 20 {
		maxContent = 20
	}
	content := b.Message.Content
	if content == "" {
		content = "..."
	}
	body := style.Render(util.Wrap(content, maxContent))

	header := t.MessageAuthor.Render(b.Message.Role.DisplayName())
	if b.ShowTimestamp && !b.Message.Timestamp.IsZero() {
		header += " " + t.MessageTime.Render(b.Message.FormatTime())
	}

	block := lipgloss.JoinVertical(align, header, body)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// RenderMessage renders msg as a text bubble.
func RenderMessage(msg model.Message, theme *styles.Theme, width int) string {
	b := NewMessageBubble(msg, theme)
	b.SetWidth(width)
	return b.View()
}
