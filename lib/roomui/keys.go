// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the room browser TUI.
type KeyMap struct {
	// Navigation (context-sensitive: room list or booking list
	// depending on current focus).
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Focus switching between the room and booking panes.
	FocusToggle key.Binding

	// Data operations.
	Refresh    key.Binding
	NewBooking key.Binding
	Reschedule key.Binding
	Cancel     key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	NewBooking: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new booking"),
	),
	Reschedule: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "reschedule"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel booking"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
