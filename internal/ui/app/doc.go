// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the top-level Bubble Tea model for cookbot.
//
// The model is the single navigation authority: View selects which screen
// (home, chat, contact) receives input and is drawn between the header and
// footer. It also owns the theme, the session identity and the footer
// status line.
//
// # Usage
//
//	m := app.New(app.Options{Backend: client, Config: cfg, Logger: logger})
//	err := app.Run(ctx, m, configPath)
package app
