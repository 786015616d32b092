// cookbot - a terminal client for the CookBot cooking assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/cookbot-tui/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
