// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the cookbot TUI.

All colors use Lip Gloss AdaptiveColor so a single palette serves both light
and dark terminals. A Theme owns its own lipgloss.Renderer, which lets the
user force light or dark rendering regardless of what the terminal reports.

# Color System (colors.go)

  - Tomato - Brand color, header and user highlights
  - Basil - Success states and saved recipes
  - Saffron - Warnings, in-flight indicators
  - Paprika - Errors
  - Plum - Assistant messages and links

# Theme System (theme.go)

	theme := styles.NewTheme(styles.ModeAuto)
	theme = theme.Toggle() // dark <-> light

# Animations (animations.go)

Spinner frame sets for the typing indicator.
*/
package styles
