package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennyflow/penny/internal/service"
)

// Run starts the interactive UI over an initialized store and blocks until
// the user quits.
func Run(store service.Store) error {
	program := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
