// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/cookbot-tui/internal/api"
	chatctl "github.com/jeranaias/cookbot-tui/internal/chat"
)

// =============================================================================
// REQUEST MESSAGES
// =============================================================================

// ReplyMsg carries the outcome of a chat request back to the update loop.
type ReplyMsg struct {
	Result chatctl.Result
}

// SavedRecipesMsg carries the result of listing the session's saved
// recipes.
type SavedRecipesMsg struct {
	SessionID string
	Recipes   *api.SavedRecipes
	Err       error
}

// =============================================================================
// OUTBOUND MESSAGES
// =============================================================================

// StatusMsg asks the parent to show a one-line status in the footer.
type StatusMsg struct {
	Text    string
	IsError bool
}
