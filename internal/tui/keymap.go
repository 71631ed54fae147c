package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings shown in the footer help.
type KeyMap struct {
	Add    key.Binding
	Search key.Binding
	Sort   key.Binding
	Filter key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add expense"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle category"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "reset filters"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpLine renders the footer help from the bindings.
func (k KeyMap) HelpLine() string {
	parts := make([]string, 0, 6)
	for _, binding := range []key.Binding{k.Add, k.Search, k.Sort, k.Filter, k.Reset, k.Quit} {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " · ")
}
