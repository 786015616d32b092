// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-wide key bindings.
type KeyMap struct {
	Quit        key.Binding
	ToggleTheme key.Binding
	Home        key.Binding
	Chat        key.Binding
	Contact     key.Binding
	NewChat     key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
}

// DefaultKeyMap returns the default application bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Home: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "home"),
		),
		Chat: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "chat"),
		),
		Contact: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "contact"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "new chat"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "start"),
		),
	}
}
