// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Tab identifies a navigation target shown in the header.
type Tab int

const (
	TabHome Tab = iota
	TabChat
	TabContact
)

// Tabs lists the navigation targets in display order.
var Tabs = []Tab{TabHome, TabChat, TabContact}

// String returns the display label for the tab.
func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabChat:
		return "Chat"
	case TabContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Header is the title bar with navigation and the theme indicator.
type Header struct {
	Title   string
	Tagline string
	Active  Tab
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a Header with the default branding.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:   "CookBot",
		Tagline: "Your Digital Sous Chef",
		Active:  TabHome,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetActive marks the current navigation tab.
func (h *Header) SetActive(tab Tab) {
	h.Active = tab
}

// SetTheme swaps the theme after a toggle.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// View renders the header.
func (h *Header) View() string {
	t := h.theme
	width := clampWidth(h.Width, 40)

	brand := t.HeaderBrand.Render(h.Title)
	if h.Tagline != "" && width >= 70 {
		brand += " " + t.Muted.Render(h.Tagline)
	}

	var nav []string
	for i, tab := range Tabs {
		label := "F" + strconv.Itoa(i+1) + " " + tab.String()
		if tab == h.Active {
			nav = append(nav, t.NavItemOn.Render(label))
		} else {
			nav = append(nav, t.NavItem.Render(label))
		}
	}
	navView := strings.Join(nav, " ")

	mode := "light"
	if t.IsDark {
		mode = "dark"
	}
	toggle := t.Muted.Render("[" + mode + "]")

	inner := width - t.Header.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(brand) - lipgloss.Width(navView) - lipgloss.Width(toggle) - 2
	if gap < 1 {
		// Drop the tagline before the navigation.
		brand = t.HeaderBrand.Render(h.Title)
		gap = inner - lipgloss.Width(brand) - lipgloss.Width(navView) - lipgloss.Width(toggle) - 2
		if gap < 1 {
			gap = 1
		}
	}

	line := brand + strings.Repeat(" ", gap) + navView + "  " + toggle
	return t.Header.Width(inner + t.Header.GetHorizontalPadding()).Render(line)
}
