// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Tomato - Brand color, header, user highlights
var Tomato = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}

// TomatoDeep - Darker tomato for backgrounds
var TomatoDeep = lipgloss.AdaptiveColor{Light: "#9A3412", Dark: "#7C2D12"}

// Plum - Assistant messages, links, selections
var Plum = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"}

// Basil - Success states, saved recipes
var Basil = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Paprika - Errors
var Paprika = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

// Saffron - Warnings, pending states
var Saffron = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFBF5", Dark: "#1C1917"}

// SurfaceDim - Headers and footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5EFE6", Dark: "#141210"}

// SurfaceBright - Cards
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#292524"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E7DED2", Dark: "#44403C"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#292524", Dark: "#F5F5F4"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#D6D3D1"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#78716C"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1C1917"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#7C2D12", Dark: "#FFEDD5"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#FB923C", Dark: "#EA580C"}

var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#3B0764", Dark: "#EDE9FE"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#7C3AED"}

var RecipeCardBorder = lipgloss.AdaptiveColor{Light: "#86EFAC", Dark: "#15803D"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet pairs each status with a shape so state is readable
// without color.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators are ASCII-safe status prefixes.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[!!]",
	Warning: "[!]",
	Info:    "[i]",
}
