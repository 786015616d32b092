// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/config"
)

// Run starts the full-screen program and blocks until it exits.
// When configPath is non-empty, edits to that file are pushed into the
// running model.
func Run(ctx context.Context, m *Model, configPath string) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if configPath != "" {
		w, err := config.Watch(configPath, func(cfg *config.Config, err error) {
			p.Send(ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			m.logger.Warn("config watch disabled", zap.String("path", configPath), zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
