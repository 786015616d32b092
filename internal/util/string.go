// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth shortens s to at most maxWidth columns, appending "..." when
// anything was cut and there is room for it. Wide runes are never split.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// PadRight pads s with spaces to exactly width columns, truncating if needed.
func PadRight(s string, width int) string {
	s = TruncateWidth(s, width)
	return runewidth.FillRight(s, width)
}

// Wrap soft-wraps text at word boundaries so no line exceeds width columns.
// Existing newlines are kept. Words wider than width are hard-split.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out strings.Builder
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		lineWidth := 0
		for j, word := range strings.Fields(para) {
			w := runewidth.StringWidth(word)
			switch {
			case j == 0:
			case lineWidth+1+w > width:
				out.WriteByte('\n')
				lineWidth = 0
			default:
				out.WriteByte(' ')
				lineWidth++
			}
			for w > width {
				head := runewidth.Truncate(word, width, "")
				out.WriteString(head)
				out.WriteByte('\n')
				word = strings.TrimPrefix(word, head)
				w = runewidth.StringWidth(word)
				lineWidth = 0
			}
			out.WriteString(word)
			lineWidth += w
		}
	}
	return out.String()
}
