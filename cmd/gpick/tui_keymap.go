package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/core/tui/keymap"
)

// pickerKeyMap defines the key bindings for the picker TUI. The filter input
// stays focused for the whole session, so every binding must keep off the
// printable keys.
type pickerKeyMap struct {
	keymap.Base
}

func newPickerKeyMap() pickerKeyMap {
	base := keymap.NewBase()
	base.Up = key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/ctrl+p", "up"),
	)
	base.Down = key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓/ctrl+n", "down"),
	)
	base.PageUp = key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	)
	base.PageDown = key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "page down"),
	)
	base.Confirm = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)
	base.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)
	base.Help = key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	)
	return pickerKeyMap{Base: base}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	// Footer hints are rendered manually; the popup shows the full map.
	return []key.Binding{}
}

// Sections overrides the inherited sections so the help popup only lists
// bindings the picker handles. Everything else falls through to the filter
// input as text.
func (k pickerKeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown),
		keymap.ActionsSection(k.Confirm),
		keymap.SystemSection(k.Help, k.Quit),
	}
}

var pickerKeys = newPickerKeyMap()
