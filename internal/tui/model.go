// Package tui is the interactive habit tracker. The habits view carries
// the month scroller and heatmap, the schedule view lists one-off tasks
// and the archive view restores or purges archived habits.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
	"github.com/avinash6817/habit-ticker/internal/tracker"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
)

type Model struct {
	state.Model
}

func NewModel(store storage.Provider, svc *tracker.Service, settings models.Settings) Model {
	return Model{Model: state.New(store, svc, settings)}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Quit, m.Keys.Help}
	var view []key.Binding
	switch m.State {
	case constants.StateHabits:
		view = habitsHelp()
	case constants.StateSchedule:
		view = scheduleHelp()
	case constants.StateArchive:
		view = archiveHelp()
	}
	return [][]key.Binding{global, view}
}

func (m Model) Init() tea.Cmd {
	return nil
}
