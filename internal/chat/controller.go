// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

// Submission errors. Both mean nothing changed.
var (
	ErrEmptyInput     = errors.New("message is empty")
	ErrRequestPending = errors.New("a request is already in flight")
)

var (
	// ErrDiscarded is returned by Exchange when the conversation was reset
	// while its request was in flight.
	ErrDiscarded = errors.New("conversation was reset before the reply arrived")

	errNoReply = errors.New("backend returned no reply")
)

// =============================================================================
// STATE
// =============================================================================

// State is the request lifecycle state of the chat screen.
type State int

const (
	// StateIdle is ready for a submission.
	StateIdle State = iota

	// StateAwaitingResponse has one request in flight.
	StateAwaitingResponse

	// StateErrorShown is showing the last failure until the next submission.
	StateErrorShown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingResponse:
		return "awaiting-response"
	case StateErrorShown:
		return "error-shown"
	default:
		return "unknown"
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Sender is the transport the controller uses. *api.Client satisfies it.
type Sender interface {
	SendChatMessage(ctx context.Context, text, sessionID string) (*api.ChatReply, error)
}

// Options configures a Controller.
type Options struct {
	Sender    Sender
	SessionID string
	Logger    *zap.Logger
}

// Ticket describes one accepted submission.
type Ticket struct {
	Epoch     uint64
	SessionID string
	Text      string
	Message   model.Message
}

// Result is the outcome of sending a Ticket.
type Result struct {
	Ticket Ticket
	Reply  *api.ChatReply
	Err    error
}

// Controller coordinates the conversation log with the in-flight request.
// All methods are safe for concurrent use.
type Controller struct {
	sender Sender
	logger *zap.Logger

	mu        sync.Mutex
	sessionID string
	conv      *model.Conversation
	state     State
	lastErr   error
	epoch     uint64
}

// NewController creates a controller with an empty conversation.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		sender:    opts.Sender,
		logger:    logger.Named("chat"),
		sessionID: opts.SessionID,
		conv:      model.NewConversation(),
	}
}

// Submit accepts text for sending. It appends the user's message at once
// and moves to StateAwaitingResponse. Empty input and submissions while a
// request is pending return an error and change nothing.
func (c *Controller) Submit(text string) (Ticket, error) {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return Ticket{}, ErrEmptyInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateAwaitingResponse {
		return Ticket{}, ErrRequestPending
	}

	c.lastErr = nil
	msg := c.conv.AddUserMessage(text)
	c.state = StateAwaitingResponse

	return Ticket{
		Epoch:     c.epoch,
		SessionID: c.sessionID,
		Text:      text,
		Message:   msg,
	}, nil
}

// Send performs the request for t. It does not touch controller state and
// may run on any goroutine.
func (c *Controller) Send(ctx context.Context, t Ticket) Result {
	if c.sender == nil {
		return Result{Ticket: t, Err: &api.Error{Op: api.OpChat, Message: api.MsgChatFailed, Err: errNoReply}}
	}
	reply, err := c.sender.SendChatMessage(ctx, t.Text, t.SessionID)
	if err == nil && reply == nil {
		err = &api.Error{Op: api.OpChat, Message: api.MsgChatFailed, Err: errNoReply}
	}
	return Result{Ticket: t, Reply: reply, Err: err}
}

// Resolve applies r. A success appends the assistant turn and returns to
// idle; a failure moves to StateErrorShown and keeps the user's turn.
// Results from an older epoch, or arriving when nothing is pending, are
// dropped and Resolve returns false.
func (c *Controller) Resolve(r Result) bool {
	_, ok := c.resolve(r)
	return ok
}

// resolve applies r under the lock and returns the assistant message it
// appended, if any.
func (c *Controller) resolve(r Result) (model.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.Ticket.Epoch != c.epoch || c.state != StateAwaitingResponse {
		c.logger.Debug("discarding stale chat result",
			zap.Uint64("ticket_epoch", r.Ticket.Epoch),
			zap.Uint64("epoch", c.epoch),
			zap.Stringer("state", c.state),
		)
		return model.Message{}, false
	}

	if r.Err != nil {
		c.state = StateErrorShown
		c.lastErr = r.Err
		c.logger.Info("chat request failed",
			zap.String("session_id", r.Ticket.SessionID),
			zap.Error(r.Err),
		)
		return model.Message{}, true
	}

	var recipe *model.Recipe
	if r.Reply.IsRecipe {
		recipe = r.Reply.Recipe
	}
	msg := c.conv.AddAssistantMessage(r.Reply.Response, recipe)
	c.state = StateIdle
	return msg, true
}

// Exchange runs Submit, Send and Resolve in sequence and returns the
// assistant's message.
func (c *Controller) Exchange(ctx context.Context, text string) (model.Message, error) {
	t, err := c.Submit(text)
	if err != nil {
		return model.Message{}, err
	}
	r := c.Send(ctx, t)
	msg, ok := c.resolve(r)
	if !ok {
		return model.Message{}, ErrDiscarded
	}
	if r.Err != nil {
		return model.Message{}, r.Err
	}
	return msg, nil
}

// Reset starts a new conversation under sessionID. Any in-flight request
// is abandoned: its result will be discarded.
func (c *Controller) Reset(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.sessionID = sessionID
	c.conv = model.NewConversation()
	c.state = StateIdle
	c.lastErr = nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// InFlight reports whether a request is pending.
func (c *Controller) InFlight() bool {
	return c.State() == StateAwaitingResponse
}

// LastError returns the failure being shown, if any.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ErrorMessage returns the displayable form of LastError.
func (c *Controller) ErrorMessage() string {
	return api.ErrorMessage(c.LastError())
}

// Messages returns a snapshot of the conversation log.
func (c *Controller) Messages() []model.Message {
	return c.Conversation().Messages()
}

// Conversation returns the current conversation.
func (c *Controller) Conversation() *model.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv
}

// SessionID returns the session identity requests are sent under.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Epoch returns the current epoch.
func (c *Controller) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}
