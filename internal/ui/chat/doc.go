// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the TUI.
//
// The screen wraps a chat.Controller from internal/chat. Sending a message
// appends the user's turn at once and starts a tea.Cmd that performs the
// request; the reply comes back as a ReplyMsg and is resolved against the
// controller, which discards it if the conversation was reset meanwhile.
//
// # Key Types
//
//   - Model: The Bubble Tea model for the chat screen
//   - KeyMap: Keyboard bindings
//   - ReplyMsg, SavedRecipesMsg, StatusMsg: Messages produced by the screen
//
// # Recipe Cards
//
// Assistant messages carrying a recipe render as components.RecipeCard.
// One card is focused at a time (the newest by default); the save and copy
// shortcuts act on it.
package chat
