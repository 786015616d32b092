// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator shows that the assistant is composing a reply.
type TypingIndicator struct {
	spinner   spinner.Model
	label     string
	startTime time.Time
	isActive  bool
	theme     *styles.Theme
}

// NewTypingIndicator creates an inactive indicator.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.DotsSpinner.Frames,
		FPS:    styles.DotsSpinner.Duration(),
	}
	return TypingIndicator{
		spinner: s,
		label:   "CookBot is typing",
		theme:   theme,
	}
}

// SetTheme swaps the theme after a toggle.
func (t *TypingIndicator) SetTheme(theme *styles.Theme) {
	t.theme = theme
}

// Start activates the indicator and returns the first tick.
func (t *TypingIndicator) Start() tea.Cmd {
	if t.isActive {
		return nil
	}
	t.isActive = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator. Pending ticks are dropped by Update.
func (t *TypingIndicator) Stop() {
	t.isActive = false
}

// IsActive reports whether the indicator is running.
func (t *TypingIndicator) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since Start.
func (t *TypingIndicator) Elapsed() time.Duration {
	if t.startTime.IsZero() {
		return 0
	}
	return time.Since(t.startTime)
}

// Update advances the animation.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.isActive {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, or "" when inactive.
func (t TypingIndicator) View() string {
	if !t.isActive {
		return ""
	}
	return t.theme.Typing.Render(t.label + " " + t.spinner.View())
}
