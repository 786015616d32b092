// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/cookbot-tui/internal/util"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// hangingWrap wraps text to width, putting prefix before the first line and
// indenting continuation lines to line up under the text.
func hangingWrap(prefix, text string, width int) string {
	indent := strings.Repeat(" ", util.StringWidth(prefix))
	avail := width - util.StringWidth(prefix)
	if avail < 10 {
		avail = 10
	}

	lines := strings.Split(util.Wrap(text, avail), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// clampWidth keeps a render width within sane bounds.
func clampWidth(width, min int) int {
	if width < min {
		return min
	}
	return width
}
