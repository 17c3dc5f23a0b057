package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avinash6817/habit-ticker/internal/tui/components/archive"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
)

// HandleArchiveMessages restores or purges archived habits. Both ask first.
func HandleArchiveMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case archive.RestoreHabitMsg:
		id, name := msg.ID, msg.Name
		return true, Ask(m, fmt.Sprintf("Restore %q to your habits?", name), func(m *state.Model) tea.Cmd {
			if err := m.Store.RestoreHabit(id); err != nil {
				m.Status = fmt.Sprintf("restore failed: %v", err)
				return nil
			}
			m.RefreshArchive()
			m.RefreshHabits()
			m.Status = fmt.Sprintf("Restored %s", name)
			return nil
		})

	case archive.PurgeHabitMsg:
		id, name := msg.ID, msg.Name
		return true, Confirm(m, fmt.Sprintf("Delete %q and all of its history?", name), func(m *state.Model) tea.Cmd {
			if err := m.Store.DeleteHabit(id); err != nil {
				m.Status = fmt.Sprintf("delete failed: %v", err)
				return nil
			}
			m.RefreshArchive()
			m.Status = fmt.Sprintf("Deleted %s", name)
			return nil
		})
	}
	return false, nil
}
