// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// ErrFieldsRequired is shown when any field is blank.
var ErrFieldsRequired = api.ErrFieldsRequired

// Messages shown after a submission.
const (
	MsgSent       = "Your message has been sent successfully!"
	MsgSendFailed = "Failed to send message."
)

// DefaultClearDelay is how long the outcome message stays visible.
const DefaultClearDelay = 5 * time.Second

// Submitter delivers a contact form. *api.Client satisfies it.
type Submitter interface {
	SubmitContact(ctx context.Context, form api.ContactForm) (*api.ContactResult, error)
}

// =============================================================================
// MESSAGES
// =============================================================================

// SubmittedMsg carries the outcome of a submission.
type SubmittedMsg struct {
	Result *api.ContactResult
	Err    error
}

// ClearStatusMsg clears the outcome message if Gen is still current.
type ClearStatusMsg struct {
	Gen int
}

// =============================================================================
// KEYS
// =============================================================================

// KeyMap defines the form's key bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

// DefaultKeyMap returns the default form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "send message"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit}
}

// =============================================================================
// MODEL
// =============================================================================

// Field identifies a form control. FieldSubmit is the send button.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
	FieldSubmit
	fieldCount
)

// Options configures a Form.
type Options struct {
	Submitter  Submitter
	Logger     *zap.Logger
	ClearDelay time.Duration
}

// Form is the contact screen model.
type Form struct {
	submitter  Submitter
	logger     *zap.Logger
	clearDelay time.Duration
	theme      *styles.Theme
	keys       KeyMap

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   Field

	pending       bool
	status        string
	statusIsError bool
	statusGen     int

	width int
}

// New creates an empty form with the name field focused.
func New(theme *styles.Theme, opts Options) *Form {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := opts.ClearDelay
	if delay <= 0 {
		delay = DefaultClearDelay
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Prompt = ""

	message := textarea.New()
	message.Placeholder = "How can we help?"
	message.CharLimit = 5000
	message.ShowLineNumbers = false
	message.SetHeight(5)

	f := &Form{
		submitter:  opts.Submitter,
		logger:     logger.Named("ui.contact"),
		clearDelay: delay,
		theme:      theme,
		keys:       DefaultKeyMap(),
		name:       name,
		email:      email,
		message:    message,
		width:      80,
	}
	f.setFocus(FieldName)
	return f
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Keys returns the form's key map.
func (f *Form) Keys() KeyMap {
	return f.keys
}

// SetTheme swaps the theme after a toggle.
func (f *Form) SetTheme(theme *styles.Theme) {
	f.theme = theme
}

// SetClearDelay changes how long outcome messages stay visible.
func (f *Form) SetClearDelay(d time.Duration) {
	if d > 0 {
		f.clearDelay = d
	}
}

// SetSize updates the available width.
func (f *Form) SetSize(width, height int) {
	f.width = width
	w := width - 8
	if w < 20 {
		w = 20
	}
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// Values returns the current field contents.
func (f *Form) Values() api.ContactForm {
	return api.ContactForm{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

// SetValues fills the fields.
func (f *Form) SetValues(v api.ContactForm) {
	f.name.SetValue(v.Name)
	f.email.SetValue(v.Email)
	f.message.SetValue(v.Message)
}

// Pending reports whether a submission is in flight.
func (f *Form) Pending() bool {
	return f.pending
}

// Status returns the outcome message and whether it is an error.
func (f *Form) Status() (string, bool) {
	return f.status, f.statusIsError
}

// Focused returns the focused control.
func (f *Form) Focused() Field {
	return f.focus
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles a message for the form.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Submit):
			return f.Submit()
		case key.Matches(msg, f.keys.Next):
			f.setFocus((f.focus + 1) % fieldCount)
			return nil
		case key.Matches(msg, f.keys.Prev):
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return nil
		case msg.Type == tea.KeyEnter:
			switch f.focus {
			case FieldName, FieldEmail:
				f.setFocus(f.focus + 1)
				return nil
			case FieldSubmit:
				return f.Submit()
			}
		}

	case SubmittedMsg:
		return f.handleSubmitted(msg)

	case ClearStatusMsg:
		if msg.Gen == f.statusGen {
			f.status = ""
			f.statusIsError = false
		}
		return nil
	}

	return f.updateFocused(msg)
}

// Submit validates the form and sends it. It does nothing while a
// submission is pending.
func (f *Form) Submit() tea.Cmd {
	if f.pending {
		return nil
	}

	form := f.Values().Trimmed()
	if err := form.Validate(); err != nil {
		return f.showStatus(api.ErrorMessage(err), true)
	}
	if f.submitter == nil {
		return f.showStatus(api.MsgContactFailed, true)
	}

	f.pending = true
	submitter := f.submitter
	return func() tea.Msg {
		res, err := submitter.SubmitContact(context.Background(), form)
		return SubmittedMsg{Result: res, Err: err}
	}
}

func (f *Form) handleSubmitted(msg SubmittedMsg) tea.Cmd {
	if !f.pending {
		return nil
	}
	f.pending = false

	switch {
	case msg.Err != nil:
		f.logger.Info("contact submission failed", zap.Error(msg.Err))
		return f.showStatus(api.ErrorMessage(msg.Err), true)

	case msg.Result == nil || !msg.Result.Success:
		text := MsgSendFailed
		if msg.Result != nil && msg.Result.Message != "" {
			text = msg.Result.Message
		}
		return f.showStatus(text, true)
	}

	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.setFocus(FieldName)

	f.logger.Debug("contact submission accepted", zap.String("reply", msg.Result.Message))
	return f.showStatus(MsgSent, false)
}

// showStatus displays text and schedules its removal.
func (f *Form) showStatus(text string, isError bool) tea.Cmd {
	f.status = text
	f.statusIsError = isError
	f.statusGen++
	gen := f.statusGen
	return tea.Tick(f.clearDelay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}

func (f *Form) setFocus(field Field) {
	f.focus = field
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch field {
	case FieldName:
		f.name.Focus()
	case FieldEmail:
		f.email.Focus()
	case FieldMessage:
		f.message.Focus()
	}
}

func (f *Form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case FieldName:
		f.name, cmd = f.name.Update(msg)
	case FieldEmail:
		f.email, cmd = f.email.Update(msg)
	case FieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the form.
func (f *Form) View() string {
	t := f.theme

	var b strings.Builder
	b.WriteString(t.WelcomeTitle.Render("Contact Us"))
	b.WriteString("\n")
	b.WriteString(t.WelcomeSubtitle.Render("Questions, feedback or a recipe gone wrong? Send us a note."))
	b.WriteString("\n\n")

	b.WriteString(f.field("Name", f.name.View(), FieldName))
	b.WriteString("\n")
	b.WriteString(f.field("Email", f.email.View(), FieldEmail))
	b.WriteString("\n")
	b.WriteString(f.field("Message", f.message.View(), FieldMessage))
	b.WriteString("\n\n")

	switch {
	case f.pending:
		b.WriteString(t.ButtonDisabled.Render("Sending..."))
	case f.focus == FieldSubmit:
		b.WriteString(t.ButtonActive.Render("> Send Message"))
	default:
		b.WriteString(t.Button.Render("  Send Message"))
	}

	if f.status != "" {
		b.WriteString("\n\n")
		b.WriteString(t.RenderStatus(!f.statusIsError, f.status))
	}

	return t.Renderer().NewStyle().Padding(1, 2).Render(b.String())
}

func (f *Form) field(label, view string, field Field) string {
	box := f.theme.FieldBlurred
	if f.focus == field {
		box = f.theme.FieldFocused
	}
	return f.theme.FieldLabel.Render(label) + "\n" + box.Render(view)
}
