// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat turns and recipes.
//
// # Key Types
//
//   - Message: a single immutable chat turn (user or assistant)
//   - Conversation: append-only, ordered log of Messages for one session
//   - Recipe: structured recipe payload attached to recipe-flagged replies
//   - Role: message origin (user, assistant)
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("What can I make with chicken and rice?")
//	conv.AddAssistantMessage("Try a stir-fry.", nil)
//
//	for _, msg := range conv.Messages() {
//	    if msg.ShowsRecipeCard() {
//	        renderCard(msg.Recipe)
//	    }
//	}
package model
