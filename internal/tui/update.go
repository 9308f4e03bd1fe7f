package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateEditingDaily, StateEditingDeep:
			return m.updateForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
		default:
			return m.updateTab(msg)
		}
	}

	return m, nil
}

// updateTab handles keys specific to the active tab.
func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateDaily:
		if key.Matches(msg, m.keys.Edit) {
			return m, m.startDailyForm()
		}

	case StateDeep:
		reviews := m.records.DeepReviews()
		switch {
		case key.Matches(msg, m.keys.New):
			rec := m.records.CreateDeepReview()
			m.deepCursor = 0
			m.statusMsg = "Created " + rec.Title
		case key.Matches(msg, m.keys.Up):
			if m.deepCursor > 0 {
				m.deepCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.deepCursor < len(reviews)-1 {
				m.deepCursor++
			}
		case key.Matches(msg, m.keys.Enter):
			if m.deepCursor < len(reviews) {
				return m, m.startDeepForm(reviews[m.deepCursor])
			}
		}
	}

	return m, nil
}

// updateForm routes messages to the active huh form and applies the
// result when it completes.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateEditingDaily {
			m.saveDailyForm()
		} else {
			m.saveDeepForm()
		}
		m.state = m.previousState
		m.form = nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
	}

	return m, cmd
}
