// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/config"
)

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// HealthMsg carries the startup backend health check.
type HealthMsg struct {
	Status *api.HealthStatus
	Err    error
}

// clearStatusMsg clears the footer status if Gen is still current.
type clearStatusMsg struct {
	Gen int
}
