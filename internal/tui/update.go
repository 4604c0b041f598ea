package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/elevate/internal/banner"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancelTouches()
			return m, tea.Quit
		case "esc":
			return m, banner.Dismiss()
		}
		cmd := m.scroll.HandleKey(msg)
		return m, tea.Batch(cmd, m.board.drain())

	case tea.MouseMsg:
		// The banner floats above the list, so it sees input first.
		if consumed, cmd := m.banner.HandleMouse(msg); consumed {
			if msg.Action == tea.MouseActionPress {
				// A new press means any release the list was waiting for
				// is lost.
				m.scroll.Cancel()
			}
			return m, tea.Batch(cmd, m.board.drain())
		}
		m.scroll.HandleMouse(msg)
		return m, m.board.drain()

	case tea.BlurMsg:
		// Losing focus loses the release, so nothing in flight may fire.
		m.cancelTouches()
		return m, m.board.drain()
	}

	return m, m.banner.Update(msg)
}

func (m Model) cancelTouches() {
	m.scroll.Cancel()
	m.banner.CancelTouch()
}
