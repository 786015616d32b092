// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"strings"
)

// Op names a backend operation. It selects the fallback message used when
// the backend does not supply one.
type Op string

const (
	OpChat        Op = "chat"
	OpSaveRecipe  Op = "save_recipe"
	OpListRecipes Op = "my_recipes"
	OpContact     Op = "contact"
	OpHealth      Op = "health"
)

// Fallback messages, shown when a request fails without a backend "error".
const (
	MsgChatFailed     = "Failed to send message. Please check your connection and try again."
	MsgSaveFailed     = "Failed to save recipe. Please try again."
	MsgListFailed     = "Failed to load recipes. Please try again."
	MsgContactFailed  = "Failed to send message. Please try again later."
	MsgHealthFailed   = "Backend server is not responding."
	MsgUnexpectedType = "I received an unexpected response format, but I'm here to help! Could you please rephrase your request?"
)

// Input validation errors, returned before any request is issued.
var (
	ErrEmptyMessage   = errors.New("Message cannot be empty")
	ErrMissingSession = errors.New("Session ID is required")
	ErrFieldsRequired = errors.New("All fields are required.")
	ErrInvalidEmail   = errors.New("Please enter a valid email address.")
)

// FallbackMessage returns the user-facing message for a failed op.
func (o Op) FallbackMessage() string {
	switch o {
	case OpChat:
		return MsgChatFailed
	case OpSaveRecipe:
		return MsgSaveFailed
	case OpListRecipes:
		return MsgListFailed
	case OpContact:
		return MsgContactFailed
	case OpHealth:
		return MsgHealthFailed
	default:
		return "Request failed. Please try again."
	}
}

// Error is the single error shape returned by every Client operation.
// Message is always suitable for display.
type Error struct {
	Op      Op
	Status  int // HTTP status, 0 when no response was received
	Message string
	Err     error // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the request failed before any response.
func (e *Error) IsTransport() bool {
	return e.Status == 0
}

// ErrorMessage collapses any error to the string shown to the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func transportError(op Op, err error) *Error {
	return &Error{Op: op, Message: op.FallbackMessage(), Err: err}
}

func inputError(op Op, err error) *Error {
	return &Error{Op: op, Message: err.Error(), Err: err}
}

// backendError builds an *Error from a failure response body. The backend
// sends {"error": "text"}; {"error": {"message": "text"}} is accepted too.
func backendError(op Op, status int, body []byte) *Error {
	e := &Error{Op: op, Status: status, Message: op.FallbackMessage()}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &envelope) != nil || len(envelope.Error) == 0 {
		return e
	}

	var text string
	if json.Unmarshal(envelope.Error, &text) != nil {
		var obj struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &obj) == nil {
			text = obj.Message
		}
	}
	if text = strings.TrimSpace(text); text != "" {
		e.Message = text
	}
	return e
}
