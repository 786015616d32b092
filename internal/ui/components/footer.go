// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// =============================================================================
// FOOTER COMPONENT
// =============================================================================

// Footer shows shortcut hints, a transient status line and the copyright.
type Footer struct {
	Bindings []key.Binding
	Status   string
	IsError  bool
	Width    int
	theme    *styles.Theme
	now      func() time.Time
}

// NewFooter creates an empty footer.
func NewFooter(theme *styles.Theme) *Footer {
	return &Footer{
		Width: 80,
		theme: theme,
		now:   time.Now,
	}
}

// SetWidth updates the footer width.
func (f *Footer) SetWidth(width int) {
	f.Width = width
}

// SetTheme swaps the theme after a toggle.
func (f *Footer) SetTheme(theme *styles.Theme) {
	f.theme = theme
}

// SetBindings replaces the shortcut hints.
func (f *Footer) SetBindings(bindings ...key.Binding) {
	f.Bindings = bindings
}

// SetStatus sets the status line; isError selects error styling.
func (f *Footer) SetStatus(status string, isError bool) {
	f.Status = status
	f.IsError = isError
}

// ClearStatus removes the status line.
func (f *Footer) ClearStatus() {
	f.Status = ""
	f.IsError = false
}

// View renders the footer.
func (f *Footer) View() string {
	t := f.theme
	width := clampWidth(f.Width, 40)
	inner := width - t.Footer.GetHorizontalFrameSize()

	var hints []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, t.ShortcutKey.Render(h.Key)+" "+t.ShortcutDesc.Render(h.Desc))
	}
	hintLine := strings.Join(hints, t.Muted.Render(" | "))

	copyright := t.Muted.Render("(c) " + strconv.Itoa(f.now().Year()) + " CookBot")
	if gap := inner - lipgloss.Width(hintLine) - lipgloss.Width(copyright); gap > 0 {
		hintLine += strings.Repeat(" ", gap) + copyright
	}

	lines := []string{hintLine}
	if f.Status != "" {
		lines = append([]string{t.RenderStatus(!f.IsError, f.Status)}, lines...)
	}
	return t.Footer.Width(inner + t.Footer.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}
