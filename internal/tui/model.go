// Package tui is an interactive browser over a directory iterator: it steps
// forward and back through the files and previews the one coming next.
package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"

	"github.com/joe/dir-iter/internal/tui/shared"
	"github.com/joe/dir-iter/pkg/diriter"
)

// Model represents the browser state
type Model struct {
	iter *diriter.Iterator
	root string

	// trail holds the emitted paths in emission order; Prev pops it.
	trail    []string
	upcoming *diriter.Entry

	// busy is set while a step runs, so only one command touches the
	// iterator at a time. It starts set because Init runs the first Peek.
	busy bool

	status string
	// warn marks status as a step that could not be taken.
	warn bool
	err  error

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over it. Paths are shown relative to root.
func NewModel(it *diriter.Iterator, root string) Model {
	return Model{
		iter:   it,
		root:   root,
		keys:   defaultKeyMap(),
		help:   help.New(),
		busy:   true,
		status: "press n for the first file",
	}
}

// Busy reports whether a step is still running (for testing)
func (m Model) Busy() bool {
	return m.busy
}

// Trail returns the emitted paths, oldest first (for testing)
func (m Model) Trail() []string {
	return m.trail
}

// Upcoming returns the previewed next path, or "" at the end of the tree.
func (m Model) Upcoming() string {
	if m.upcoming == nil {
		return ""
	}

	return m.relative(m.upcoming.Path)
}

// Err returns the error that stopped the iterator, if any.
func (m Model) Err() error {
	return m.err
}

// Status returns the current status line (for testing)
func (m Model) Status() string {
	return m.status
}

func (m Model) relative(path string) string {
	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		return path
	}

	return filepath.ToSlash(rel)
}

func (m Model) pathWidth() int {
	if m.width == 0 {
		return 0
	}

	const overhead = 2*shared.DefaultPadding + 6 // borders, padding, arrow

	return m.width - overhead
}
