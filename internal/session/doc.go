// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session generates the client-side session identity.
//
// A session identity is created once per chat screen load (and again on
// "new chat") and sent with every backend request so the backend can
// associate turns and saved recipes. It is opaque: nothing on the client
// parses or validates it.
//
// # Usage
//
//	sess := session.New()
//	reply, err := client.SendChatMessage(ctx, text, sess.ID)
package session
