// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

// Store holds everything the dev server remembers. It is safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	recipes  map[string][]api.SavedRecipe
	history  map[string][]model.Message
	contacts []api.ContactForm
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		recipes: make(map[string][]api.SavedRecipe),
		history: make(map[string][]model.Message),
		now:     time.Now,
	}
}

// SaveRecipe stores a copy of recipe under sessionID and returns its ID.
func (s *Store) SaveRecipe(sessionID string, recipe *model.Recipe) string {
	id := uuid.NewString()
	saved := api.SavedRecipe{
		RecipeID:  id,
		SessionID: sessionID,
		Recipe:    *recipe.Clone(),
		SavedAt:   s.now().UTC().Format(time.RFC3339Nano),
	}

	s.mu.Lock()
	s.recipes[sessionID] = append(s.recipes[sessionID], saved)
	s.mu.Unlock()
	return id
}

// Recipes returns the recipes saved for sessionID, newest first.
func (s *Store) Recipes(sessionID string) []api.SavedRecipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := s.recipes[sessionID]
	out := make([]api.SavedRecipe, 0, len(saved))
	for i := len(saved) - 1; i >= 0; i-- {
		out = append(out, saved[i])
	}
	return out
}

// AppendTurn records one exchange in the session's conversation.
func (s *Store) AppendTurn(sessionID string, user, assistant model.Message) {
	s.mu.Lock()
	s.history[sessionID] = append(s.history[sessionID], user, assistant)
	s.mu.Unlock()
}

// History returns a copy of the session's conversation.
func (s *Store) History(sessionID string) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Message(nil), s.history[sessionID]...)
}

// AddContact records a contact form submission.
func (s *Store) AddContact(form api.ContactForm) {
	s.mu.Lock()
	s.contacts = append(s.contacts, form)
	s.mu.Unlock()
}

// Contacts returns the received contact submissions.
func (s *Store) Contacts() []api.ContactForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]api.ContactForm(nil), s.contacts...)
}
