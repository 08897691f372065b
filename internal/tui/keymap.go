// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/passaudit/internal/i18n"
)

type keyMap struct {
	Quit   key.Binding
	Reveal key.Binding
	Copy   key.Binding
	Scroll key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Reveal, km.Copy, km.Scroll, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Reveal, km.Copy}, {km.Scroll, km.Quit}}
}

var _ help.KeyMap = keyMap{}

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", i18n.T("tui.key.quit")),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", i18n.T("tui.key.reveal")),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("tui.key.copy")),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", i18n.T("tui.key.scroll")),
		),
	}
}
