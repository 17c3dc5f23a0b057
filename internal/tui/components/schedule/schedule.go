// Package schedule is the agenda view: tasks grouped by due day.
package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/scheduler"
)

type AddTaskMsg struct{}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID    string
	Title string
}

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type Item struct {
	Task    models.Task
	Overdue bool
}

func (i Item) Title() string {
	mark := "[ ]"
	title := i.Task.Title
	switch {
	case i.Task.Completed:
		mark = "[x]"
		title = doneStyle.Render(title)
	case i.Overdue:
		title = overdueStyle.Render(title)
	}
	reminder := i.Task.ReminderTime
	if reminder == "" {
		reminder = "--:-- --"
	}
	return fmt.Sprintf("%s %s  %s", mark, reminder, title)
}

func (i Item) Description() string {
	priority := i.Task.Priority
	if priority == constants.PriorityHigh {
		priority = highStyle.Render(priority)
	}
	parts := []string{i.Task.DueDate, priority, i.Task.Category}
	if i.Task.Description != "" {
		parts = append(parts, i.Task.Description)
	}
	return strings.Join(parts, " · ")
}

func (i Item) FilterValue() string { return i.Task.Title }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today datekey.DateKey
	days  []scheduler.Day
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Schedule"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	bindings := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	return Model{list: l, keys: keys}
}

// SetTasks rebuilds the agenda. Items keep agenda order so the list reads
// day by day.
func (m *Model) SetTasks(tasks []models.Task, today datekey.DateKey) {
	m.today = today
	m.days = scheduler.Agenda(tasks)

	var items []list.Item
	for _, d := range m.days {
		overdue := d.Date < today.String()
		for _, t := range d.Tasks {
			items = append(items, Item{Task: t, Overdue: overdue && !t.Completed})
		}
	}
	m.list.SetItems(items)
}

// Today returns the agenda day for today, if any task is due.
func (m Model) Today() (scheduler.Day, bool) {
	for _, d := range m.days {
		if d.Date == m.today.String() {
			return d, true
		}
	}
	return scheduler.Day{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddTaskMsg{} }
		}
		if i, ok := m.list.SelectedItem().(Item); ok {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				id := i.Task.ID
				return m, func() tea.Msg { return ToggleTaskMsg{ID: id} }
			case key.Matches(msg, m.keys.Delete):
				id, title := i.Task.ID, i.Task.Title
				return m, func() tea.Msg { return DeleteTaskMsg{ID: id, Title: title} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	summary := "Nothing due today"
	if d, ok := m.Today(); ok {
		summary = fmt.Sprintf("Today: %d/%d done", d.Progress.Completed, d.Progress.Eligible)
	}
	header := headerStyle.Render(summary)

	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "  No tasks yet.", "  Press 'a' to add one.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.list.View())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, max(height-2, 4))
}
