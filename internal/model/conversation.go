// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/cookbot-tui/internal/util"
)

// titleWidth is the display width of a derived conversation title.
const titleWidth = 50

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the ordered, append-only log of turns for one session.
// Insertion order is display order. There is no way to edit or remove a
// message once it has been appended.
type Conversation struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	messages  []Message
	updatedAt time.Time
}

// NewConversation creates an empty conversation with a generated ID.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: now,
		updatedAt: now,
	}
}

// =============================================================================
// APPENDING
// =============================================================================

// Append adds msg to the end of the log.
func (c *Conversation) Append(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	c.updatedAt = time.Now()
}

// AddUserMessage appends and returns a new user message.
func (c *Conversation) AddUserMessage(content string) Message {
	msg := NewUserMessage(content)
	c.Append(msg)
	return msg
}

// AddAssistantMessage appends and returns a new assistant message.
// A non-nil recipe makes it a recipe-flagged turn.
func (c *Conversation) AddAssistantMessage(content string, recipe *Recipe) Message {
	msg := NewAssistantMessage(content, recipe)
	c.Append(msg)
	return msg
}

// =============================================================================
// READING
// =============================================================================

// Messages returns a snapshot of the log in display order.
func (c *Conversation) Messages() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the log.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// IsEmpty returns true if nothing has been appended yet.
func (c *Conversation) IsEmpty() bool {
	return c.Len() == 0
}

// Last returns the most recent message, if any.
func (c *Conversation) Last() (Message, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Recipes returns the recipe payloads of all recipe-flagged turns, oldest first.
func (c *Conversation) Recipes() []*Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*Recipe
	for _, msg := range c.messages {
		if msg.ShowsRecipeCard() {
			out = append(out, msg.Recipe)
		}
	}
	return out
}

// UpdatedAt returns the time of the last append.
func (c *Conversation) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

// Title derives a display title from the first user message.
func (c *Conversation) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, msg := range c.messages {
		if msg.IsUser() {
			return util.TruncateWidth(msg.Content, titleWidth)
		}
	}
	return "New conversation"
}
