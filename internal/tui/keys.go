package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/joe/dir-iter/internal/tui/shared"
)

// keyMap holds the browser's key bindings and implements help.KeyMap.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "j", "down", " "),
			key.WithHelp("n/j/↓", "next file"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "k", "up"),
			key.WithHelp("p/k/↑", "undo last"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", shared.KeyCtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}
