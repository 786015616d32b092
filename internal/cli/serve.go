// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cookbot-tui/internal/devserver"
)

func newServeCmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local development backend",
		Long: `Serves the CookBot API from memory with a canned assistant, for working
offline. Point the client at it with --backend http://ADDR/api.

Prometheus metrics are served at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = e.cfg.Server.Addr
			}
			srv := devserver.New(devserver.Config{
				Addr:           addr,
				AllowedOrigins: e.cfg.Server.AllowedOrigins,
				Logger:         e.logger,
			})

			p := newPrinter(cmd.OutOrStdout())
			p.Title("CookBot dev server")
			p.Field("API", fmt.Sprintf("http://%s/api", addr))
			p.Field("Metrics", fmt.Sprintf("http://%s/metrics", addr))
			p.Muted("Press Ctrl+C to stop.")

			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config server.addr)")
	return cmd
}
