// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contact provides the contact form screen.
//
// The form has three fields (name, email, message). Submitting validates
// locally, then sends the form through a Submitter. Submit is ignored while
// a request is pending. On success the fields are cleared; on failure they
// are kept. Either way the outcome message disappears after a delay, and a
// newer message is never cleared by an older timer.
package contact
