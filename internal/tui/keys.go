package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the chat view bindings; it satisfies help.KeyMap.
type keyMap struct {
	Send       key.Binding
	Suggestion key.Binding
	Cycle      key.Binding
	Copy       key.Binding
	Scroll     key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Suggestion: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3"),
			key.WithHelp("alt+1-3", "suggestion"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next suggestion"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy reply"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown", "up", "down"),
			key.WithHelp("↑↓", "scroll"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Suggestion, k.Copy, k.Scroll, k.Clear}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Suggestion, k.Cycle},
		{k.Copy, k.Scroll, k.Clear, k.Quit},
	}
}

// suggestionIndex maps alt+N to a zero-based suggestion index
func suggestionIndex(keyName string) (int, bool) {
	switch keyName {
	case "alt+1":
		return 0, true
	case "alt+2":
		return 1, true
	case "alt+3":
		return 2, true
	}
	return 0, false
}
