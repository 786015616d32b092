// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for cookbot.
//
// Supports TOML and JSON configuration files, a .env file in the working
// directory, environment variable overrides, validation, and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - BackendConfig: Backend base URL, timeout and client rate limit
//   - UIConfig: Theme and UI timer settings
//   - Watcher: fsnotify-based reload of the config file
//
// # Configuration Precedence
//
// Configuration is loaded from (highest precedence first):
//   - Environment variables (BACKEND_URI, COOKBOT_*), including .env
//   - ~/.cookbot/config.toml
//   - ~/.cookbot/config.json
//   - Built-in defaults
//
// COOKBOT_HOME relocates the ~/.cookbot directory.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client := api.NewClient(cfg.Backend.URL).WithTimeout(cfg.Backend.Timeout())
package config
