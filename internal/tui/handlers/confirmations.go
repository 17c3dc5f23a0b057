package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
)

// Confirm opens a yes/no prompt for an irreversible action.
func Confirm(m *state.Model, message string, action func(*state.Model) tea.Cmd) tea.Cmd {
	cmd := Ask(m, message, action)
	m.ConfirmDanger = true
	return cmd
}

// Ask opens a yes/no prompt that runs action when accepted.
func Ask(m *state.Model, message string, action func(*state.Model) tea.Cmd) tea.Cmd {
	m.ConfirmationForm = &state.ConfirmationFormModel{}
	cmd := m.Open(constants.StateConfirmDelete, NewConfirmationForm(message, m.ConfirmationForm))
	m.ConfirmMessage = message
	m.PendingAction = action
	return cmd
}

// HandleConfirmationState handles the generic confirmation state
func HandleConfirmationState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.Return()
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		var result tea.Cmd
		action := m.PendingAction
		confirmed := m.ConfirmationForm.Confirmed
		m.Return()
		if confirmed && action != nil {
			result = action(m)
		}
		return result
	case huh.StateAborted:
		m.Return()
		return nil
	}
	return cmd
}
