// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat holds the chat screen's request lifecycle, independent of
// any rendering.
//
// A Controller owns the conversation log and a three-state machine:
//
//	idle --submit--> awaiting-response --reply--> idle
//	                        |
//	                        +--failure--> error-shown --submit--> awaiting-response
//
// At most one request is in flight. Submissions while pending, and empty
// or whitespace-only submissions, are no-ops.
//
// The lifecycle is split into three steps so a UI event loop can run the
// network call off the loop:
//
//	ticket, err := ctrl.Submit(text)   // on the UI loop: appends the user turn
//	result := ctrl.Send(ctx, ticket)   // anywhere: performs the request
//	ctrl.Resolve(result)               // on the UI loop: applies the reply
//
// Every ticket carries the controller's epoch. Reset starts a new
// conversation and bumps the epoch, so a reply that arrives for an older
// conversation is dropped by Resolve instead of landing in the new one.
package chat
