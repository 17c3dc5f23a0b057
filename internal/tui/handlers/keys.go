package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
)

// HandleGlobalKeys handles keys that work in every main view. Forms and
// confirmations receive every key themselves.
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}
	if !m.InMainView() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.Tab):
		m.State = cycle(m.State, 1)
		m.Status = ""
		return true, nil
	case key.Matches(msg, m.Keys.ShiftTab):
		m.State = cycle(m.State, -1)
		m.Status = ""
		return true, nil
	}
	return false, nil
}

func cycle(current constants.SessionState, step int) constants.SessionState {
	n := len(state.MainViews)
	for i, s := range state.MainViews {
		if s == current {
			return state.MainViews[(i+step+n)%n]
		}
	}
	return constants.StateHabits
}
