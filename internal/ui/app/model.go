// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	chatctl "github.com/jeranaias/cookbot-tui/internal/chat"
	"github.com/jeranaias/cookbot-tui/internal/config"
	"github.com/jeranaias/cookbot-tui/internal/session"
	uichat "github.com/jeranaias/cookbot-tui/internal/ui/chat"
	"github.com/jeranaias/cookbot-tui/internal/ui/components"
	"github.com/jeranaias/cookbot-tui/internal/ui/contact"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// statusClearDelay is how long footer status lines stay visible.
const statusClearDelay = 5 * time.Second

// healthTimeout bounds the startup health check.
const healthTimeout = 5 * time.Second

// View selects the screen being shown.
type View int

const (
	ViewHome View = iota
	ViewChat
	ViewContact
)

// String returns the screen name.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewChat:
		return "chat"
	case ViewContact:
		return "contact"
	default:
		return "unknown"
	}
}

func (v View) tab() components.Tab {
	switch v {
	case ViewChat:
		return components.TabChat
	case ViewContact:
		return components.TabContact
	default:
		return components.TabHome
	}
}

// Backend is everything the TUI needs from the remote service.
// *api.Client satisfies it.
type Backend interface {
	chatctl.Sender
	components.RecipeSaver
	uichat.RecipeLister
	contact.Submitter
	Health(ctx context.Context) (*api.HealthStatus, error)
}

// Options configures the application model.
type Options struct {
	Backend Backend
	Config  *config.Config
	Logger  *zap.Logger

	// Theme overrides the theme derived from Config.UI.Theme.
	Theme *styles.Theme

	// NewSession defaults to session.New.
	NewSession func() session.Identity
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the top-level Bubble Tea model.
type Model struct {
	backend    Backend
	cfg        *config.Config
	logger     *zap.Logger
	theme      *styles.Theme
	keys       KeyMap
	newSession func() session.Identity

	view    View
	session session.Identity

	header  *components.Header
	footer  *components.Footer
	welcome *components.Welcome
	chat    *uichat.Model
	contact *contact.Form

	statusGen int
	width     int
	height    int
}

// New creates the application model on the home screen.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ParseMode(cfg.UI.Theme))
	}
	newSession := opts.NewSession
	if newSession == nil {
		newSession = session.New
	}

	id := newSession()
	ctrl := chatctl.NewController(chatctl.Options{
		Sender:    opts.Backend,
		SessionID: id.ID,
		Logger:    logger,
	})

	m := &Model{
		backend:    opts.Backend,
		cfg:        cfg,
		logger:     logger.Named("app"),
		theme:      theme,
		keys:       DefaultKeyMap(),
		newSession: newSession,
		session:    id,
		header:     components.NewHeader(theme),
		footer:     components.NewFooter(theme),
		welcome:    components.NewWelcome(theme),
		chat: uichat.New(theme, uichat.Options{
			Controller:  ctrl,
			Saver:       opts.Backend,
			Lister:      opts.Backend,
			Logger:      logger,
			CopiedReset: cfg.UI.CopiedResetDelay(),
		}),
		contact: contact.New(theme, contact.Options{
			Submitter:  opts.Backend,
			Logger:     logger,
			ClearDelay: cfg.UI.ContactClearDelay(),
		}),
		width:  80,
		height: 24,
	}

	if cfg.UI.ShowWelcome {
		m.navigate(ViewHome)
	} else {
		m.navigate(ViewChat)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.chat.Init(), m.checkHealth())
}

// CurrentView returns the screen being shown.
func (m *Model) CurrentView() View {
	return m.view
}

// Session returns the current session identity.
func (m *Model) Session() session.Identity {
	return m.session
}

// Theme returns the active theme.
func (m *Model) Theme() *styles.Theme {
	return m.theme
}

// Chat returns the chat screen.
func (m *Model) Chat() *uichat.Model {
	return m.chat
}

// Contact returns the contact screen.
func (m *Model) Contact() *contact.Form {
	return m.contact
}

// Status returns the footer status line.
func (m *Model) Status() string {
	return m.footer.Status
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.view == ViewChat {
		// Card shortcuts toggle as recipes arrive.
		m.syncBindings()
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case uichat.StatusMsg:
		return m.setStatus(msg.Text, msg.IsError)

	case clearStatusMsg:
		if msg.Gen == m.statusGen {
			m.footer.ClearStatus()
			m.layout()
		}
		return nil

	case HealthMsg:
		return m.handleHealth(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)

	case contact.SubmittedMsg, contact.ClearStatusMsg:
		return m.contact.Update(msg)
	}

	return m.chat.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		m.applyTheme(m.theme.Toggle())
		return nil

	case key.Matches(msg, m.keys.Home):
		m.navigate(ViewHome)
		return nil

	case key.Matches(msg, m.keys.Chat):
		m.navigate(ViewChat)
		return nil

	case key.Matches(msg, m.keys.Contact):
		m.navigate(ViewContact)
		return nil

	case key.Matches(msg, m.keys.NewChat):
		m.NewChat()
		return nil
	}

	switch m.view {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewContact:
		return m.contact.Update(msg)
	default:
		return m.chat.Update(msg)
	}
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.welcome.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.welcome.MoveDown()
	case key.Matches(msg, m.keys.Select):
		prompt := m.welcome.Selected()
		m.navigate(ViewChat)
		if prompt != "" {
			return m.chat.Submit(prompt)
		}
	}
	return nil
}

// NewChat discards the conversation and starts a new session.
func (m *Model) NewChat() {
	m.session = m.newSession()
	m.chat.Reset(m.session.ID)
	m.logger.Info("new chat", zap.String("session_id", m.session.ID))
	m.navigate(ViewChat)
}

func (m *Model) navigate(v View) {
	m.view = v
	m.header.SetActive(v.tab())
	m.syncBindings()
	m.layout()
}

// syncBindings shows the active screen's shortcuts in the footer.
func (m *Model) syncBindings() {
	switch m.view {
	case ViewChat:
		keys := m.chat.Keys()
		m.footer.SetBindings(append(keys.ShortHelp(), m.keys.NewChat, m.keys.ToggleTheme, m.keys.Quit)...)
	case ViewContact:
		m.footer.SetBindings(append(m.contact.Keys().ShortHelp(), m.keys.ToggleTheme, m.keys.Quit)...)
	default:
		m.footer.SetBindings(m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Chat, m.keys.Contact, m.keys.ToggleTheme, m.keys.Quit)
	}
}

func (m *Model) applyTheme(theme *styles.Theme) {
	m.theme = theme
	m.header.SetTheme(theme)
	m.footer.SetTheme(theme)
	m.welcome.SetTheme(theme)
	m.chat.SetTheme(theme)
	m.contact.SetTheme(theme)
	m.layout()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.layout()
}

// layout hands each screen the space between header and footer.
func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	body := m.height - lipgloss.Height(m.header.View()) - lipgloss.Height(m.footer.View())
	if body < 5 {
		body = 5
	}
	m.welcome.SetSize(m.width, body)
	m.chat.SetSize(m.width, body)
	m.contact.SetSize(m.width, body)
}

// setStatus shows a footer status line and schedules its removal.
func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.footer.SetStatus(text, isError)
	m.statusGen++
	gen := m.statusGen
	m.layout()
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{Gen: gen}
	})
}

func (m *Model) checkHealth() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()
		status, err := backend.Health(ctx)
		return HealthMsg{Status: status, Err: err}
	}
}

func (m *Model) handleHealth(msg HealthMsg) tea.Cmd {
	switch {
	case msg.Err != nil:
		m.logger.Info("backend health check failed", zap.Error(msg.Err))
		return m.setStatus(api.ErrorMessage(msg.Err), true)
	case !msg.Status.Healthy():
		text := api.MsgHealthFailed
		if msg.Status != nil && msg.Status.Error != "" {
			text = msg.Status.Error
		}
		return m.setStatus(text, true)
	default:
		return m.setStatus("Connected to "+m.cfg.Backend.URL, false)
	}
}

func (m *Model) handleConfigReload(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		return m.setStatus("Config reload failed: "+msg.Err.Error(), true)
	}

	prev := m.cfg
	m.cfg = msg.Config
	m.chat.SetCopiedReset(m.cfg.UI.CopiedResetDelay())
	m.contact.SetClearDelay(m.cfg.UI.ContactClearDelay())

	if m.cfg.UI.Theme != prev.UI.Theme {
		theme := styles.NewTheme(styles.ParseMode(m.cfg.UI.Theme))
		theme.SetSize(m.width, m.height)
		m.applyTheme(theme)
	}
	if m.cfg.Backend.URL != prev.Backend.URL {
		m.logger.Info("backend URL changed; restart to apply",
			zap.String("url", m.cfg.Backend.URL))
		return m.setStatus("Configuration reloaded. Restart to use "+m.cfg.Backend.URL, false)
	}
	return m.setStatus("Configuration reloaded", false)
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.view {
	case ViewChat:
		body = m.chat.View()
	case ViewContact:
		body = m.contact.View()
	default:
		body = m.welcome.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}
