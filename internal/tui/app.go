package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/dir-iter/pkg/diriter"
)

// Run browses it in the terminal until the user quits. It returns the
// iterator's error, if one stopped the walk.
func Run(it *diriter.Iterator, root string) error {
	final, err := tea.NewProgram(NewModel(it, root), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	if model, ok := final.(Model); ok {
		return model.Err()
	}

	return nil
}
