// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cookbot-tui/internal/api"
)

func newHealthCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout())
			p.Field("Backend", e.client.BaseURL())

			status, err := e.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			if !status.Healthy() {
				msg := status.Error
				if msg == "" {
					msg = api.MsgHealthFailed
				}
				return errors.New(msg)
			}

			p.Field("Status", status.Status)
			if status.Timestamp != "" {
				p.Field("Server time", status.Timestamp)
			}
			p.Success("Backend is healthy")
			return nil
		},
	}
}
