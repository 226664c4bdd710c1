package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/dir-iter/pkg/diriter"
)

type direction int

const (
	forward direction = iota
	backward
	look
)

// steppedMsg carries the result of a step and the fresh preview.
type steppedMsg struct {
	direction direction
	entry     diriter.Entry
	ok        bool
	upcoming  diriter.Entry
	hasNext   bool
	err       error
}

// step runs one iterator operation off the UI goroutine.
func (m Model) step(dir direction) tea.Cmd {
	it := m.iter

	return func() tea.Msg {
		msg := steppedMsg{direction: dir}

		switch dir {
		case forward:
			msg.entry, msg.ok = it.Next()
		case backward:
			msg.entry, msg.ok = it.Prev()
		case look:
		}

		if it.Err() == nil {
			msg.upcoming, msg.hasNext = it.Peek()
		}
		msg.err = it.Err()

		return msg
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.step(look)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case steppedMsg:
		return m.handleStepped(msg), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.start(forward)

	case key.Matches(msg, m.keys.Prev):
		return m.start(backward)
	}

	return m, nil
}

func (m Model) start(dir direction) (tea.Model, tea.Cmd) {
	if m.busy || m.err != nil {
		return m, nil
	}

	m.busy = true

	return m, m.step(dir)
}

func (m Model) handleStepped(msg steppedMsg) Model {
	m.busy = false
	m.warn = false
	m.err = msg.err

	m.upcoming = nil
	if msg.hasNext {
		upcoming := msg.upcoming
		m.upcoming = &upcoming
	}

	switch msg.direction {
	case forward:
		if msg.ok {
			m.trail = append(m.trail, m.relative(msg.entry.Path))
			m.status = fmt.Sprintf("%d visited", len(m.trail))
		} else {
			m.status = "end of tree"
		}

	case backward:
		if msg.ok {
			if n := len(m.trail); n > 0 && m.trail[n-1] == m.relative(msg.entry.Path) {
				m.trail = m.trail[:n-1]
			}
			m.status = "undid " + m.relative(msg.entry.Path)
		} else {
			m.status = "nothing to undo"
			m.warn = true
		}

	case look:
	}

	return m
}
