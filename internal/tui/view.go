package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/tui/components/archive"
	"github.com/avinash6817/habit-ticker/internal/tui/components/habits"
	"github.com/avinash6817/habit-ticker/internal/tui/components/schedule"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateHabits:
		content = docStyle.Render(m.HabitsModel.View())
	case constants.StateSchedule:
		content = docStyle.Render(m.ScheduleModel.View())
	case constants.StateArchive:
		content = docStyle.Render(m.ArchiveModel.View())
	case constants.StateAddHabit, constants.StateEditHabit, constants.StateAddTask:
		content = docStyle.Render(m.viewForm())
	case constants.StateConfirmDelete:
		content = m.viewConfirm()
	}

	var banner string
	if m.ValidationWarning != "" && m.State == constants.StateHabits {
		banner = warningStyle.Render(m.ValidationWarning)
	}

	var status string
	if m.Status != "" {
		status = statusStyle.Render(m.Status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		status,
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.State
	if !m.InMainView() {
		active = m.PreviousState
	}
	var tabs []string
	for _, t := range []struct {
		title string
		state constants.SessionState
	}{
		{"Habits", constants.StateHabits},
		{"Schedule", constants.StateSchedule},
		{"Archive", constants.StateArchive},
	} {
		if t.state == active {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	if m.Form == nil {
		return ""
	}
	if m.FormError == "" {
		return m.Form.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.FormError), "", m.Form.View())
}

func (m Model) viewConfirm() string {
	if m.Form == nil {
		return ""
	}
	body := m.Form.View()
	if m.ConfirmDanger {
		body = lipgloss.JoinVertical(lipgloss.Center, dangerStyle.Render("This cannot be undone."), "", body)
	}
	return lipgloss.Place(m.Width, max(m.Height-4, 0), lipgloss.Center, lipgloss.Center, body)
}

func habitsHelp() []key.Binding {
	k := habits.DefaultKeyMap()
	return []key.Binding{k.Toggle, k.PrevDay, k.NextDay, k.Today, k.Add, k.Edit, k.Archive, k.Delete, k.MoveUp, k.MoveDown}
}

func archiveHelp() []key.Binding {
	k := archive.DefaultKeyMap()
	return []key.Binding{k.Restore, k.Delete}
}

func scheduleHelp() []key.Binding {
	k := schedule.DefaultKeyMap()
	return []key.Binding{k.Toggle, k.Add, k.Delete}
}
