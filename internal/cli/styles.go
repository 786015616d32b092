// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

// printer writes styled command output. Colors are dropped automatically
// when the destination is not a terminal or NO_COLOR is set.
type printer struct {
	out io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	prompt  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(w))

	return &printer{
		out:     w,
		title:   r.NewStyle().Bold(true).Foreground(styles.Tomato),
		label:   r.NewStyle().Foreground(styles.TextSecondary).Width(14),
		value:   r.NewStyle().Foreground(styles.TextPrimary),
		success: r.NewStyle().Bold(true).Foreground(styles.Basil),
		failure: r.NewStyle().Bold(true).Foreground(styles.Paprika),
		muted:   r.NewStyle().Foreground(styles.TextMuted),
		prompt:  r.NewStyle().Bold(true).Foreground(styles.Plum),
	}
}

// Title prints a bold heading.
func (p *printer) Title(text string) {
	fmt.Fprintln(p.out, p.title.Render(text))
}

// Field prints an aligned label/value line.
func (p *printer) Field(label, value string) {
	fmt.Fprintln(p.out, p.label.Render(label+":")+" "+p.value.Render(value))
}

// Success prints an [OK] line.
func (p *printer) Success(text string) {
	fmt.Fprintln(p.out, p.success.Render(styles.StatusIndicators.Success)+" "+text)
}

// Failure prints an [!!] line.
func (p *printer) Failure(text string) {
	fmt.Fprintln(p.out, p.failure.Render(styles.StatusIndicators.Error)+" "+text)
}

// Muted prints a dim line.
func (p *printer) Muted(text string) {
	fmt.Fprintln(p.out, p.muted.Render(text))
}

// Line prints text unstyled.
func (p *printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}
