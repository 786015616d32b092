// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the cookbot packages.
//
// # Key Functions
//
//   - TruncateWidth, PadRight, StringWidth: display-width aware string helpers
//   - Wrap: soft word wrapping for chat bubbles and recipe cards
//   - AtomicWrite, AtomicWriteFile: crash-safe file writes used by config and export
//
// # Usage
//
//	line := util.TruncateWidth(recipe.Title, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
