// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/ui/contact"
)

func newContactCmd(e *env) *cobra.Command {
	var form api.ContactForm

	cmd := &cobra.Command{
		Use:     "contact",
		Short:   "Send a message to the CookBot team",
		Example: `  cookbot contact --name "Ann" --email ann@example.com --message "Love the pasta recipe!"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := e.client.SubmitContact(cmd.Context(), form)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if !result.Success {
				msg := result.Message
				if msg == "" {
					msg = contact.MsgSendFailed
				}
				return errors.New(msg)
			}
			p.Success(contact.MsgSent)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "your name")
	f.StringVar(&form.Email, "email", "", "your email address")
	f.StringVar(&form.Message, "message", "", "the message to send")
	return cmd
}
