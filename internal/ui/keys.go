package ui

import "github.com/charmbracelet/bubbles/key"

// HistoryKeys defines key bindings for the history browser
type HistoryKeys struct {
	Back   key.Binding
	Detail key.Binding
	Down   key.Binding
	Quit   key.Binding
	Up     key.Binding
}

func newHistoryKeys() HistoryKeys {
	return HistoryKeys{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}

// helpLine renders bindings as "key desc" pairs
func helpLine(bindings ...key.Binding) string {
	var line string
	for i, b := range bindings {
		if i > 0 {
			line += "  •  "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line
}
