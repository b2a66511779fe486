package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	quit, selectOne, up, down key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "quit"),
		),
		selectOne: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
	}
}

func (k *keymap) help() []key.Binding {
	return []key.Binding{k.up, k.down, k.selectOne, k.quit}
}
