// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects how adaptive colors resolve.
type Mode int

const (
	// ModeAuto follows the terminal background.
	ModeAuto Mode = iota
	ModeDark
	ModeLight
)

// ParseMode converts a config value ("auto", "dark", "light").
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ModeDark
	case "light":
		return ModeLight
	default:
		return ModeAuto
	}
}

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	default:
		return "auto"
	}
}

// Theme holds all the styled components for the application.
type Theme struct {
	Mode         Mode
	IsDark       bool
	ColorProfile termenv.Profile

	renderer *lipgloss.Renderer

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER AND FOOTER STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderBrand  lipgloss.Style
	NavItem      lipgloss.Style
	NavItemOn    lipgloss.Style
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	MessageAuthor   lipgloss.Style
	MessageTime     lipgloss.Style
	EmptyState      lipgloss.Style
	Typing          lipgloss.Style

	// ==========================================================================
	// RECIPE CARD STYLES
	// ==========================================================================

	RecipeCard        lipgloss.Style
	RecipeTitle       lipgloss.Style
	RecipeDescription lipgloss.Style
	RecipeMeta        lipgloss.Style
	RecipeSection     lipgloss.Style
	RecipeItem        lipgloss.Style
	Button            lipgloss.Style
	ButtonActive      lipgloss.Style
	ButtonDisabled    lipgloss.Style

	// ==========================================================================
	// INPUT AND FORM STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldFocused   lipgloss.Style
	FieldBlurred   lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeTitle    lipgloss.Style
	WelcomeSubtitle lipgloss.Style
	PromptItem      lipgloss.Style
	PromptSelected  lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	ErrorBanner  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	Muted        lipgloss.Style
}

// NewTheme creates a theme for the given mode. ModeAuto asks the terminal
// whether its background is dark.
func NewTheme(mode Mode) *Theme {
	renderer := lipgloss.NewRenderer(os.Stdout)
	return newTheme(mode, renderer, termenv.HasDarkBackground())
}

// newTheme builds a theme with an explicit renderer and background hint.
func newTheme(mode Mode, renderer *lipgloss.Renderer, terminalDark bool) *Theme {
	isDark := terminalDark
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	}
	renderer.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		ColorProfile: renderer.ColorProfile(),
		renderer:     renderer,
	}
	t.initStyles()
	return t
}

// Toggle returns a theme with the opposite background. An auto theme
// becomes an explicit one.
func (t *Theme) Toggle() *Theme {
	next := ModeDark
	if t.IsDark {
		next = ModeLight
	}
	nt := newTheme(next, t.renderer, t.IsDark)
	nt.SetSize(t.Width, t.Height)
	return nt
}

// Renderer exposes the theme's lipgloss renderer for ad-hoc styles.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	s := t.renderer.NewStyle

	t.App = s()
	t.Container = s().Padding(0, 1)

	// Header
	t.Header = s().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.HeaderBrand = s().
		Bold(true).
		Foreground(Tomato)

	t.NavItem = s().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.NavItemOn = s().
		Bold(true).
		Foreground(TextInverse).
		Background(Tomato).
		Padding(0, 1)

	t.Footer = s().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ShortcutKey = s().
		Bold(true).
		Foreground(Tomato)

	t.ShortcutDesc = s().
		Foreground(TextMuted)

	// Messages
	t.UserBubble = s().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1).
		MarginLeft(4)

	t.AssistantBubble = s().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1).
		MarginRight(4)

	t.MessageAuthor = s().
		Bold(true).
		Foreground(TextSecondary)

	t.MessageTime = s().
		Foreground(TextMuted)

	t.EmptyState = s().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	t.Typing = s().
		Foreground(Saffron)

	// Recipe card
	t.RecipeCard = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(RecipeCardBorder).
		Padding(0, 2)

	t.RecipeTitle = s().
		Bold(true).
		Foreground(Basil)

	t.RecipeDescription = s().
		Foreground(TextSecondary).
		Italic(true)

	t.RecipeMeta = s().
		Foreground(TextMuted)

	t.RecipeSection = s().
		Bold(true).
		Underline(true).
		Foreground(TextPrimary)

	t.RecipeItem = s().
		Foreground(TextPrimary)

	t.Button = s().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ButtonActive = s().
		Bold(true).
		Foreground(Basil).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Basil).
		Padding(0, 1)

	t.ButtonDisabled = s().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	// Inputs
	t.InputContainer = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = s().
		Bold(true).
		Foreground(Tomato)

	t.FieldLabel = s().
		Bold(true).
		Foreground(TextSecondary)

	t.FieldFocused = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Tomato).
		Padding(0, 1)

	t.FieldBlurred = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	// Welcome
	t.WelcomeTitle = s().
		Bold(true).
		Foreground(Tomato)

	t.WelcomeSubtitle = s().
		Foreground(TextSecondary)

	t.PromptItem = s().
		Foreground(TextPrimary).
		PaddingLeft(2)

	t.PromptSelected = s().
		Bold(true).
		Foreground(Tomato).
		PaddingLeft(2)

	// Status
	t.ErrorBanner = s().
		Foreground(Paprika).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Paprika).
		PaddingLeft(1)

	t.SuccessStyle = s().Foreground(Basil).Bold(true)
	t.ErrorStyle = s().Foreground(Paprika).Bold(true)
	t.WarningStyle = s().Foreground(Saffron).Bold(true)
	t.InfoStyle = s().Foreground(Plum)
	t.Muted = s().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// RenderSuccess renders a success message with its indicator.
func (t *Theme) RenderSuccess(message string) string {
	return t.SuccessStyle.Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func (t *Theme) RenderError(message string) string {
	return t.ErrorStyle.Render(StatusIndicators.Error + " " + message)
}

// RenderStatus renders a success or error message.
func (t *Theme) RenderStatus(success bool, message string) string {
	if success {
		return t.RenderSuccess(message)
	}
	return t.RenderError(message)
}
