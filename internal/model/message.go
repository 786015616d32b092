// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the origin of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "CookBot"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat turn. Messages are values: once appended to a
// Conversation they are never modified.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// IsRecipe mirrors the backend's is_recipe flag.
	IsRecipe bool    `json:"is_recipe,omitempty"`
	Recipe   *Recipe `json:"recipe,omitempty"`
}

// NewMessage creates a plain text message with a fresh ID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates an assistant message. A non-nil recipe flags
// the message as a recipe and is copied so later changes to the caller's
// value cannot reach the log.
func NewAssistantMessage(content string, recipe *Recipe) Message {
	msg := NewMessage(RoleAssistant, content)
	if recipe != nil {
		msg.IsRecipe = true
		msg.Recipe = recipe.Clone()
	}
	return msg
}

// ShowsRecipeCard reports whether the message renders as a recipe card
// instead of a text bubble.
func (m Message) ShowsRecipeCard() bool {
	return m.IsRecipe && m.Role == RoleAssistant && m.Recipe != nil
}

// IsUser returns true if this is a user message.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsAssistant returns true if this is an assistant message.
func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// FormatTime returns the timestamp as a short clock string.
func (m Message) FormatTime() string {
	return m.Timestamp.Format("15:04")
}

func generateID() string {
	return "msg_" + uuid.NewString()
}
