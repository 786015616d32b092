// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the CookBot recipe-assistant backend.
//
// The backend exposes JSON endpoints under a configurable base URL
// (BACKEND_URI, for example http://127.0.0.1:5000/api):
//
//   - POST /chat         send a chat message, get a text or recipe reply
//   - POST /save_recipe  bookmark a recipe for the session
//   - GET  /my_recipes   list the session's saved recipes
//   - POST /contact      submit the contact form
//   - GET  /health       liveness check
//
// Every failure, whether the request never reached the backend or the
// backend answered with an "error" field, comes back as a *Error whose
// message is ready to show to the user. There are no retries.
//
// # Usage
//
//	client := api.NewClient(cfg.Backend.URL).
//	    WithTimeout(30 * time.Second).
//	    WithLogger(logger)
//
//	reply, err := client.SendChatMessage(ctx, "chicken and rice?", sessionID)
//	if err != nil {
//	    status = api.ErrorMessage(err)
//	}
package api
