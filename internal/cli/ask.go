// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/export"
	"github.com/jeranaias/cookbot-tui/internal/model"
	"github.com/jeranaias/cookbot-tui/internal/session"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// askOptions are the flags of `cookbot ask`.
type askOptions struct {
	sessionID string
	json      bool
	raw       bool
}

func newAskCmd(e *env) *cobra.Command {
	var opts askOptions

	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask a single question",
		Long: `Sends one message to CookBot and prints the reply.

Recipe replies are rendered as Markdown when stdout is a terminal. The
session ID is printed to stderr so the recipe can be saved or listed later.`,
		Example: `  cookbot ask "What can I make with chicken and rice?"
  cookbot ask --json "Give me a recipe for chocolate cake"
  cookbot ask --session session_1712345678901_abc123xyz "Make it vegetarian"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runAsk(cmd, strings.Join(args, " "), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.sessionID, "session", "", "continue an existing session")
	f.BoolVar(&opts.json, "json", false, "print the reply as JSON")
	f.BoolVar(&opts.raw, "raw", false, "print Markdown without rendering")
	return cmd
}

// askJSON is the --json output shape, matching the backend's chat reply.
type askJSON struct {
	Response  string        `json:"response"`
	SessionID string        `json:"session_id"`
	IsRecipe  bool          `json:"is_recipe"`
	Recipe    *model.Recipe `json:"recipe_data,omitempty"`
}

func (e *env) runAsk(cmd *cobra.Command, question string, opts askOptions) error {
	sessionID := opts.sessionID
	if sessionID == "" {
		sessionID = session.New().ID
	}

	reply, err := e.client.SendChatMessage(cmd.Context(), question, sessionID)
	if err != nil {
		return err
	}
	if reply.SessionID != "" {
		sessionID = reply.SessionID
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(askJSON{
			Response:  reply.Response,
			SessionID: sessionID,
			IsRecipe:  reply.Recipe != nil,
			Recipe:    reply.Recipe,
		})
	}

	if err := e.printReply(out, reply, opts.raw); err != nil {
		return err
	}
	newPrinter(cmd.ErrOrStderr()).Muted("session: " + sessionID)
	return nil
}

// printReply writes the reply body, rendering Markdown on terminals.
func (e *env) printReply(out io.Writer, reply *api.ChatReply, raw bool) error {
	content := reply.Response
	if reply.Recipe != nil {
		content = export.RecipeMarkdown(reply.Recipe)
	}

	if raw || !isTerminal(out) {
		_, err := fmt.Fprintln(out, strings.TrimRight(content, "\n"))
		return err
	}
	_, err := fmt.Fprint(out, renderMarkdown(content, e.cfg.UI.Theme, terminalWidth(out)))
	return err
}

// renderMarkdown renders content with glamour. The input is returned as-is
// when rendering fails.
func renderMarkdown(content, theme string, width int) string {
	style := glamour.WithAutoStyle()
	switch styles.ParseMode(theme) {
	case styles.ModeDark:
		style = glamour.WithStandardStyle("dark")
	case styles.ModeLight:
		style = glamour.WithStandardStyle("light")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width-4))
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
