// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

type fakeSubmitter struct {
	calls  int
	result *api.ContactResult
	err    error
	got    api.ContactForm
}

func (f *fakeSubmitter) SubmitContact(ctx context.Context, form api.ContactForm) (*api.ContactResult, error) {
	f.calls++
	f.got = form
	return f.result, f.err
}

var filled = api.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Loved the soup"}

func newForm(sub Submitter) *Form {
	f := New(styles.NewTheme(styles.ModeLight), Options{Submitter: sub, ClearDelay: time.Millisecond})
	f.SetSize(80, 30)
	return f
}

func TestForm_SuccessClearsFields(t *testing.T) {
	sub := &fakeSubmitter{result: &api.ContactResult{Success: true, Message: "Message sent successfully! We will get back to you soon."}}
	f := newForm(sub)
	f.SetValues(filled)

	cmd := f.Submit()
	require.NotNil(t, cmd)
	assert.True(t, f.Pending())
	assert.Nil(t, f.Submit(), "submit while pending is ignored")

	clear := f.Update(cmd())
	assert.False(t, f.Pending())
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, filled, sub.got)
	assert.Equal(t, api.ContactForm{}, f.Values())

	status, isErr := f.Status()
	assert.Equal(t, MsgSent, status)
	assert.False(t, isErr)

	require.NotNil(t, clear)
	f.Update(clear())
	status, _ = f.Status()
	assert.Empty(t, status)
}

func TestForm_SuccessAlwaysShowsFixedMessage(t *testing.T) {
	for _, reply := range []string{"", "Message sent successfully! We will get back to you soon."} {
		f := newForm(&fakeSubmitter{result: &api.ContactResult{Success: true, Message: reply}})
		f.SetValues(filled)

		f.Update(f.Submit()())
		status, isErr := f.Status()
		assert.Equal(t, "Your message has been sent successfully!", status, reply)
		assert.False(t, isErr)
	}
}

func TestForm_FailurePreservesFields(t *testing.T) {
	sub := &fakeSubmitter{err: &api.Error{Op: api.OpContact, Message: api.MsgContactFailed, Err: errors.New("refused")}}
	f := newForm(sub)
	f.SetValues(filled)

	clear := f.Update(f.Submit()())
	assert.Equal(t, filled, f.Values())

	status, isErr := f.Status()
	assert.Equal(t, api.MsgContactFailed, status)
	assert.True(t, isErr)

	f.Update(clear())
	status, _ = f.Status()
	assert.Empty(t, status)
	assert.Equal(t, filled, f.Values())
}

func TestForm_BackendDeclines(t *testing.T) {
	f := newForm(&fakeSubmitter{result: &api.ContactResult{Success: false}})
	f.SetValues(filled)

	f.Update(f.Submit()())
	status, isErr := f.Status()
	assert.Equal(t, MsgSendFailed, status)
	assert.True(t, isErr)
	assert.Equal(t, filled, f.Values())

	f = newForm(&fakeSubmitter{result: &api.ContactResult{Success: false, Message: "Mailbox full"}})
	f.SetValues(filled)
	f.Update(f.Submit()())
	status, _ = f.Status()
	assert.Equal(t, "Mailbox full", status)
}

func TestForm_RequiredFieldsValidatedLocally(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newForm(sub)
	f.SetValues(api.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "   "})

	cmd := f.Submit()
	require.NotNil(t, cmd)
	assert.False(t, f.Pending())
	assert.Equal(t, 0, sub.calls)

	status, isErr := f.Status()
	assert.Equal(t, ErrFieldsRequired.Error(), status)
	assert.True(t, isErr)

	_, isClear := cmd().(ClearStatusMsg)
	assert.True(t, isClear)
}

func TestForm_OlderTimerDoesNotClearNewerStatus(t *testing.T) {
	f := newForm(&fakeSubmitter{})

	first := f.Submit()
	second := f.Submit()

	f.Update(first())
	status, _ := f.Status()
	assert.Equal(t, ErrFieldsRequired.Error(), status)

	f.Update(second())
	status, _ = f.Status()
	assert.Empty(t, status)
}

func TestForm_FocusCycles(t *testing.T) {
	f := newForm(&fakeSubmitter{})
	assert.Equal(t, FieldName, f.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldEmail, f.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FieldMessage, f.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldSubmit, f.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldName, f.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldSubmit, f.Focused())
}

func TestForm_TypingFillsFocusedField(t *testing.T) {
	f := newForm(&fakeSubmitter{})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	assert.Equal(t, "Ada", f.Values().Name)
}

func TestForm_View(t *testing.T) {
	f := newForm(&fakeSubmitter{})
	view := f.View()
	assert.Contains(t, view, "Contact Us")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "Send Message")
}
