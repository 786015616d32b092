// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	chatctl "github.com/jeranaias/cookbot-tui/internal/chat"
	"github.com/jeranaias/cookbot-tui/internal/model"
	"github.com/jeranaias/cookbot-tui/internal/session"
)

const replHelp = `Commands:
  /save      Save the last recipe
  /recipes   List saved recipes for this session
  /new       Start a new conversation
  /help      Show this help
  /quit      Exit (Ctrl+D also works)`

// lineReader is the subset of *liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// repl is one interactive chat session.
type repl struct {
	env        *env
	in         lineReader
	out        io.Writer
	p          *printer
	ctrl       *chatctl.Controller
	lastRecipe *model.Recipe
}

func newChatCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat in the terminal",
		Long: `Starts a line-based conversation with CookBot.

Arrow keys recall earlier lines. History is kept in memory only. Type /help
for commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := liner.NewLiner()
			line.SetCtrlCAborts(true)

			r := e.newREPL(line, cmd.OutOrStdout())
			defer r.in.Close()
			return r.run(cmd.Context())
		},
	}
}

func (e *env) newREPL(in lineReader, out io.Writer) *repl {
	return &repl{
		env: e,
		in:  in,
		out: out,
		p:   newPrinter(out),
		ctrl: chatctl.NewController(chatctl.Options{
			Sender:    e.client,
			SessionID: session.New().ID,
			Logger:    e.logger,
		}),
	}
}

// run reads lines until EOF, Ctrl+C or /quit.
func (r *repl) run(ctx context.Context) error {
	r.p.Title("CookBot - Your Digital Sous Chef")
	r.p.Muted("Type /help for commands, /quit to exit.")

	for {
		input, err := r.in.Prompt("you> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.in.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := r.command(ctx, input); quit {
				return nil
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil
		}
		r.send(ctx, input)
	}
}

// send runs one exchange and prints the reply or the error.
func (r *repl) send(ctx context.Context, text string) {
	msg, err := r.ctrl.Exchange(ctx, text)
	if err != nil {
		r.p.Failure(r.ctrl.ErrorMessage())
		r.env.logger.Debug("chat exchange failed", zap.Error(err))
		return
	}

	fmt.Fprintln(r.out, r.p.prompt.Render("CookBot:"))
	reply := &api.ChatReply{Response: msg.Content, Recipe: msg.Recipe}
	if err := r.env.printReply(r.out, reply, false); err != nil {
		r.env.logger.Warn("print reply", zap.Error(err))
	}
	if msg.Recipe != nil {
		r.lastRecipe = msg.Recipe
		r.p.Muted("Type /save to keep this recipe.")
	}
}

// command handles a slash command. It reports whether to exit.
func (r *repl) command(ctx context.Context, input string) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/quit", "/exit", "/q":
		return true

	case "/help", "/?":
		r.p.Line(replHelp)

	case "/new":
		r.ctrl.Reset(session.New().ID)
		r.lastRecipe = nil
		r.p.Success("Started a new conversation.")

	case "/save":
		r.saveLast(ctx)

	case "/recipes":
		list, err := r.env.client.ListSavedRecipes(ctx, r.ctrl.SessionID())
		if err != nil {
			r.p.Failure(api.ErrorMessage(err))
			return false
		}
		printRecipeList(r.p, list.Recipes)

	default:
		r.p.Failure(fmt.Sprintf("Unknown command %q. Type /help for commands.", input))
	}
	return false
}

func (r *repl) saveLast(ctx context.Context) {
	if r.lastRecipe == nil {
		r.p.Failure("No recipe to save yet.")
		return
	}
	result, err := r.env.client.SaveRecipe(ctx, r.ctrl.SessionID(), r.lastRecipe)
	if err != nil {
		r.p.Failure(api.ErrorMessage(err))
		return
	}
	msg := result.Message
	if msg == "" {
		msg = "Recipe saved."
	}
	r.p.Success(msg)
}
