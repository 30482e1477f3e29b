package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the chat TUI and blocks until the user quits
func Run(opts Options) error {
	m := NewModel(opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()

	// A reply still pending when the program exits is dropped.
	if fm, ok := finalModel.(Model); ok {
		fm.teardown()
	} else {
		m.teardown()
	}

	return err
}
