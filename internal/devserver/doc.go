// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package devserver is a local stand-in for the CookBot backend.
//
// It serves the same JSON contract the client speaks, with in-memory
// storage and a canned assistant instead of a language model, so the TUI
// and CLI can be developed and tested offline.
//
// # Endpoints
//
//   - POST /api/chat        - Send a message, get text or a recipe back
//   - POST /api/save_recipe - Save a recipe for a session
//   - GET  /api/my_recipes  - List a session's saved recipes
//   - POST /api/contact     - Accept a contact form submission
//   - GET  /api/health      - Liveness check
//   - GET  /metrics         - Prometheus metrics
//
// # Usage
//
//	srv := devserver.New(devserver.Config{Addr: "127.0.0.1:5000"})
//	err := srv.ListenAndServe(ctx)
package devserver
