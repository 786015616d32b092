// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	chatctl "github.com/jeranaias/cookbot-tui/internal/chat"
	"github.com/jeranaias/cookbot-tui/internal/ui/components"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// Placeholder is the chat input placeholder.
const Placeholder = "Ask me about cooking, recipes, or ingredients..."

// EmptyState is shown before the first message.
const EmptyState = "Start a conversation about cooking!"

// maxInputLength caps a single chat message.
const maxInputLength = 2000

// RecipeLister lists the recipes saved under a session. *api.Client
// satisfies it.
type RecipeLister interface {
	ListSavedRecipes(ctx context.Context, sessionID string) (*api.SavedRecipes, error)
}

// Options configures a chat screen.
type Options struct {
	Controller  *chatctl.Controller
	Saver       components.RecipeSaver
	Lister      RecipeLister
	Logger      *zap.Logger
	CopiedReset time.Duration
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	ctrl   *chatctl.Controller
	saver  components.RecipeSaver
	lister RecipeLister
	logger *zap.Logger
	theme  *styles.Theme
	keys   KeyMap

	input    textinput.Model
	viewport viewport.Model
	typing   components.TypingIndicator

	// Recipe cards keyed by message ID, in conversation order.
	cards       map[string]*components.RecipeCard
	cardOrder   []string
	focusedCard int

	copiedReset time.Duration

	width  int
	height int
}

// New creates a chat screen. opts.Controller is required.
func New(theme *styles.Theme, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.CharLimit = maxInputLength
	ti.Focus()

	m := &Model{
		ctrl:        opts.Controller,
		saver:       opts.Saver,
		lister:      opts.Lister,
		logger:      logger.Named("ui.chat"),
		theme:       theme,
		keys:        DefaultKeyMap(),
		input:       ti,
		viewport:    viewport.New(80, 20),
		typing:      components.NewTypingIndicator(theme),
		cards:       make(map[string]*components.RecipeCard),
		focusedCard: -1,
		copiedReset: opts.CopiedReset,
		width:       80,
		height:      24,
	}
	m.applyTheme()
	m.keys.setCardBindings(false)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controller returns the underlying conversation controller.
func (m *Model) Controller() *chatctl.Controller {
	return m.ctrl
}

// Keys returns the current key map.
func (m *Model) Keys() KeyMap {
	return m.keys
}

// InputValue returns the text currently in the input.
func (m *Model) InputValue() string {
	return m.input.Value()
}

// SetInputValue replaces the input text.
func (m *Model) SetInputValue(s string) {
	m.input.SetValue(s)
}

// SetSize updates the area available to the screen.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
	m.refresh()
}

// SetTheme restyles the screen after a theme toggle.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
	m.typing.SetTheme(theme)
	for _, c := range m.cards {
		c.SetTheme(theme)
	}
	m.applyTheme()
	m.refresh()
}

// SetCopiedReset changes the "Copied!" delay for cards created later.
func (m *Model) SetCopiedReset(d time.Duration) {
	m.copiedReset = d
}

// Reset starts a new conversation under sessionID. A reply still in
// flight is discarded when it arrives.
func (m *Model) Reset(sessionID string) {
	m.ctrl.Reset(sessionID)
	m.typing.Stop()
	m.input.Reset()
	m.cards = make(map[string]*components.RecipeCard)
	m.cardOrder = nil
	m.focusedCard = -1
	m.keys.setCardBindings(false)
	m.refresh()
}

// Submit sends text as the next message. Empty text and submissions while
// a reply is pending are ignored.
func (m *Model) Submit(text string) tea.Cmd {
	ticket, err := m.ctrl.Submit(text)
	if err != nil {
		m.logger.Debug("submission ignored", zap.Error(err))
		return nil
	}

	m.input.Reset()
	m.refresh()
	m.viewport.GotoBottom()

	ctrl := m.ctrl
	send := func() tea.Msg {
		return ReplyMsg{Result: ctrl.Send(context.Background(), ticket)}
	}
	return tea.Batch(send, m.typing.Start())
}

// FocusedCard returns the recipe card the shortcuts act on, if any.
func (m *Model) FocusedCard() *components.RecipeCard {
	if m.focusedCard < 0 || m.focusedCard >= len(m.cardOrder) {
		return nil
	}
	return m.cards[m.cardOrder[m.focusedCard]]
}

func (m *Model) applyTheme() {
	m.input.PromptStyle = m.theme.InputPrompt
	m.input.PlaceholderStyle = m.theme.Muted
}

// syncCards creates cards for recipe messages that don't have one yet and
// focuses the newest.
func (m *Model) syncCards() {
	added := false
	for _, msg := range m.ctrl.Messages() {
		if !msg.ShowsRecipeCard() {
			continue
		}
		if _, ok := m.cards[msg.ID]; ok {
			continue
		}
		m.cards[msg.ID] = components.NewRecipeCard(msg.ID, msg.Recipe, m.theme, components.RecipeCardOptions{
			Saver:       m.saver,
			SessionID:   m.ctrl.SessionID(),
			Logger:      m.logger,
			CopiedReset: m.copiedReset,
		})
		m.cardOrder = append(m.cardOrder, msg.ID)
		added = true
	}
	if added {
		m.setFocus(len(m.cardOrder) - 1)
	}
	m.keys.setCardBindings(len(m.cardOrder) > 0)
}

func (m *Model) setFocus(i int) {
	if len(m.cardOrder) == 0 {
		m.focusedCard = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.cardOrder) {
		i = len(m.cardOrder) - 1
	}
	m.focusedCard = i
	for j, id := range m.cardOrder {
		m.cards[id].Focused = j == i
	}
}

func (m *Model) listSavedRecipes() tea.Cmd {
	if m.lister == nil {
		return nil
	}
	lister, sessionID := m.lister, m.ctrl.SessionID()
	return func() tea.Msg {
		recipes, err := lister.ListSavedRecipes(context.Background(), sessionID)
		return SavedRecipesMsg{SessionID: sessionID, Recipes: recipes, Err: err}
	}
}
