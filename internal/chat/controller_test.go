// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

// fakeSender records calls and answers from a queue of canned outcomes.
type fakeSender struct {
	mu      sync.Mutex
	calls   []string
	replies []*api.ChatReply
	errs    []error
}

func (f *fakeSender) SendChatMessage(ctx context.Context, text, sessionID string) (*api.ChatReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sessionID+"|"+text)

	i := len(f.calls) - 1
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.replies) && f.replies[i] != nil {
		return f.replies[i], nil
	}
	return &api.ChatReply{Response: "reply to " + text}, nil
}

func newController(sender Sender) *Controller {
	return NewController(Options{Sender: sender, SessionID: "session_1"})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "awaiting-response", StateAwaitingResponse.String())
	assert.Equal(t, "error-shown", StateErrorShown.String())
	assert.Equal(t, "unknown", State(42).String())
}

// =============================================================================
// HAPPY PATH
// =============================================================================

func TestExchange_PlainText(t *testing.T) {
	sender := &fakeSender{replies: []*api.ChatReply{{Response: "Try stir-fry"}}}
	ctrl := newController(sender)

	msg, err := ctrl.Exchange(context.Background(), "chicken and rice?")
	require.NoError(t, err)
	assert.Equal(t, "Try stir-fry", msg.Content)
	assert.False(t, msg.ShowsRecipeCard())

	msgs := ctrl.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "chicken and rice?", msgs[0].Content)
	assert.Equal(t, model.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Try stir-fry", msgs[1].Content)
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Equal(t, []string{"session_1|chicken and rice?"}, sender.calls)
}

func TestExchange_Recipe(t *testing.T) {
	recipe := &model.Recipe{
		Title:        "Stir Fry",
		Ingredients:  []string{"chicken", "rice"},
		Instructions: []string{"cook chicken", "cook rice", "combine"},
	}
	sender := &fakeSender{replies: []*api.ChatReply{{Response: "", IsRecipe: true, Recipe: recipe}}}
	ctrl := newController(sender)

	msg, err := ctrl.Exchange(context.Background(), "stir fry recipe")
	require.NoError(t, err)
	require.True(t, msg.ShowsRecipeCard())
	assert.Len(t, msg.Recipe.Ingredients, 2)
	assert.Len(t, msg.Recipe.Instructions, 3)
}

func TestExchange_NSuccessfulExchangesGive2N(t *testing.T) {
	ctrl := newController(&fakeSender{})

	const n = 7
	for i := 0; i < n; i++ {
		_, err := ctrl.Exchange(context.Background(), fmt.Sprintf("q%d", i))
		require.NoError(t, err)
	}

	msgs := ctrl.Messages()
	require.Len(t, msgs, 2*n)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("q%d", i), msgs[2*i].Content)
		assert.Equal(t, fmt.Sprintf("reply to q%d", i), msgs[2*i+1].Content)
	}
}

// =============================================================================
// NO-OP SUBMISSIONS
// =============================================================================

func TestSubmit_EmptyIsNoOp(t *testing.T) {
	sender := &fakeSender{}
	ctrl := newController(sender)

	for _, input := range []string{"", "   ", "\n\t ", " "} {
		_, err := ctrl.Submit(input)
		assert.True(t, errors.Is(err, ErrEmptyInput), "input %q", input)
	}
	assert.Zero(t, ctrl.Conversation().Len())
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Empty(t, sender.calls)
}

func TestSubmit_WhilePendingIsNoOp(t *testing.T) {
	ctrl := newController(&fakeSender{})

	_, err := ctrl.Submit("first")
	require.NoError(t, err)
	require.True(t, ctrl.InFlight())

	_, err = ctrl.Submit("second")
	assert.True(t, errors.Is(err, ErrRequestPending))
	assert.Equal(t, 1, ctrl.Conversation().Len())
	assert.True(t, ctrl.InFlight())
}

func TestSubmit_NormalizesText(t *testing.T) {
	ctrl := newController(&fakeSender{})

	// "e" + combining acute composes to a single rune.
	ticket, err := ctrl.Submit("  cre\u0301me  ")
	require.NoError(t, err)
	assert.Equal(t, "cr\u00e9me", ticket.Text)
	assert.Equal(t, ticket.Text, ticket.Message.Content)
}

// =============================================================================
// FAILURES
// =============================================================================

func TestExchange_FailureKeepsUserMessage(t *testing.T) {
	failure := &api.Error{Op: api.OpChat, Message: api.MsgChatFailed}
	ctrl := newController(&fakeSender{errs: []error{failure}})

	_, err := ctrl.Exchange(context.Background(), "hello?")
	require.Error(t, err)

	msgs := ctrl.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, StateErrorShown, ctrl.State())
	assert.Equal(t, api.MsgChatFailed, ctrl.ErrorMessage())
}

func TestErrorShown_ClearedByNextSubmission(t *testing.T) {
	failure := &api.Error{Op: api.OpChat, Message: "Message cannot be empty"}
	ctrl := newController(&fakeSender{errs: []error{failure, nil}})

	_, err := ctrl.Exchange(context.Background(), "one")
	require.Error(t, err)
	require.Equal(t, StateErrorShown, ctrl.State())

	// An empty attempt is still a no-op and keeps the error visible.
	_, err = ctrl.Submit(" ")
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, StateErrorShown, ctrl.State())

	ticket, err := ctrl.Submit("two")
	require.NoError(t, err)
	assert.Nil(t, ctrl.LastError())
	assert.Equal(t, StateAwaitingResponse, ctrl.State())

	require.True(t, ctrl.Resolve(ctrl.Send(context.Background(), ticket)))
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Equal(t, 3, ctrl.Conversation().Len())
}

func TestSend_NilReplyIsFailure(t *testing.T) {
	ctrl := newController(nilSender{})

	_, err := ctrl.Exchange(context.Background(), "hi")
	assert.Equal(t, api.MsgChatFailed, api.ErrorMessage(err))
	assert.Equal(t, StateErrorShown, ctrl.State())
}

type nilSender struct{}

func (nilSender) SendChatMessage(context.Context, string, string) (*api.ChatReply, error) {
	return nil, nil
}

func TestSend_NoSenderConfigured(t *testing.T) {
	ctrl := NewController(Options{})
	_, err := ctrl.Exchange(context.Background(), "hi")
	assert.Equal(t, api.MsgChatFailed, api.ErrorMessage(err))
}

// =============================================================================
// STALE RESULTS
// =============================================================================

func TestReset_DiscardsStaleResult(t *testing.T) {
	ctrl := newController(&fakeSender{})

	ticket, err := ctrl.Submit("old question")
	require.NoError(t, err)
	result := ctrl.Send(context.Background(), ticket)

	ctrl.Reset("session_2")
	assert.Equal(t, uint64(1), ctrl.Epoch())
	assert.Equal(t, "session_2", ctrl.SessionID())
	assert.Equal(t, StateIdle, ctrl.State())

	assert.False(t, ctrl.Resolve(result))
	assert.True(t, ctrl.Conversation().IsEmpty())
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestReset_StaleResultDoesNotCompleteNewRequest(t *testing.T) {
	sender := &fakeSender{}
	ctrl := newController(sender)

	oldTicket, err := ctrl.Submit("old")
	require.NoError(t, err)
	oldResult := ctrl.Send(context.Background(), oldTicket)

	ctrl.Reset("session_2")
	newTicket, err := ctrl.Submit("new")
	require.NoError(t, err)

	assert.False(t, ctrl.Resolve(oldResult))
	assert.True(t, ctrl.InFlight())
	assert.Equal(t, 1, ctrl.Conversation().Len())

	assert.True(t, ctrl.Resolve(ctrl.Send(context.Background(), newTicket)))
	msgs := ctrl.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "reply to new", msgs[1].Content)
	assert.Equal(t, "session_2|new", sender.calls[1])
}

func TestResolve_WhenIdleIsDropped(t *testing.T) {
	ctrl := newController(&fakeSender{})
	assert.False(t, ctrl.Resolve(Result{Reply: &api.ChatReply{Response: "ghost"}}))
	assert.True(t, ctrl.Conversation().IsEmpty())
}

func TestController_ConcurrentSubmitAllowsOne(t *testing.T) {
	ctrl := newController(&fakeSender{})

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := ctrl.Submit(fmt.Sprintf("m%d", i)); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, ctrl.Conversation().Len())
}

func TestExchange_ReturnsOwnReplyDuringConcurrentReset(t *testing.T) {
	ctrl := newController(&fakeSender{})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
				ctrl.Reset(fmt.Sprintf("session_r%d", i))
			}
		}
	}()

	for i := 0; i < 200; i++ {
		text := fmt.Sprintf("q%d", i)
		msg, err := ctrl.Exchange(context.Background(), text)
		if err != nil {
			continue
		}
		assert.Equal(t, model.RoleAssistant, msg.Role, text)
		assert.Equal(t, "reply to "+text, msg.Content, text)
	}
	close(done)
	wg.Wait()
}
