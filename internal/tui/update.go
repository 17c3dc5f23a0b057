package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/tui/handlers"
)

// chromeHeight is the space taken by tabs, banner, status and help.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width, m.Height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.HabitsModel.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		m.ScheduleModel.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		m.ArchiveModel.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		m.Help.Width = msg.Width
		return m, nil
	}

	switch m.State {
	case constants.StateAddHabit:
		return m, handlers.HandleAddHabitState(&m.Model, msg)
	case constants.StateEditHabit:
		return m, handlers.HandleEditHabitState(&m.Model, msg)
	case constants.StateAddTask:
		return m, handlers.HandleAddTaskState(&m.Model, msg)
	case constants.StateConfirmDelete:
		return m, handlers.HandleConfirmationState(&m.Model, msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return m, cmd
		}
	}

	if handled, cmd := handlers.HandleHabitMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleScheduleMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleArchiveMessages(&m.Model, msg); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateHabits:
		m.HabitsModel, cmd = m.HabitsModel.Update(msg)
	case constants.StateSchedule:
		m.ScheduleModel, cmd = m.ScheduleModel.Update(msg)
	case constants.StateArchive:
		m.ArchiveModel, cmd = m.ArchiveModel.Update(msg)
	}
	return m, cmd
}
