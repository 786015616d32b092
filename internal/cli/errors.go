// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/config"
	"github.com/jeranaias/cookbot-tui/internal/export"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitUsageError    = 2
	ExitConfigError   = 3
	ExitNetworkError  = 5
	ExitNotFoundError = 7
	ExitTimeoutError  = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError reports invalid arguments or flags.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// usageErrorf builds a UsageError.
func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var apiErr *api.Error
	var ttyErr *TTYRequiredError

	switch {
	case errors.As(err, &usageErr), errors.As(err, &ttyErr), isInputError(err):
		return ExitUsageError
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeoutError
	case errors.Is(err, export.ErrNoRecipes):
		return ExitNotFoundError
	case errors.As(err, &apiErr) && apiErr.IsTransport():
		return ExitNetworkError
	default:
		return ExitGeneralError
	}
}

// isInputError reports whether the client rejected input before sending.
func isInputError(err error) bool {
	for _, target := range []error{
		api.ErrEmptyMessage,
		api.ErrMissingSession,
		api.ErrFieldsRequired,
		api.ErrInvalidEmail,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// displayError returns the user-facing text for err. Backend failures use
// their display message instead of the wrapped chain.
func displayError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return api.ErrorMessage(err)
	}
	return err.Error()
}
