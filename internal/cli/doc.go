// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the cookbot command tree.
//
// # Commands
//
//   - cookbot                 Start the TUI (default)
//   - cookbot ask QUESTION    Ask one question and print the reply
//   - cookbot chat            Line-based chat REPL
//   - cookbot recipes list    List a session's saved recipes
//   - cookbot recipes export  Write saved recipes as Markdown or JSON
//   - cookbot contact         Send the contact form
//   - cookbot health          Check the backend
//   - cookbot config ...      Show, get, set or locate configuration
//   - cookbot serve           Run the local development backend
//   - cookbot version         Print version information
//
// # Global Flags
//
//	--backend URL   Backend base URL (overrides config and BACKEND_URI)
//	--config PATH   Config file to load instead of ~/.cookbot/config.toml
//	--theme MODE    dark, light or auto
//	-v, --verbose   Debug logging
package cli
