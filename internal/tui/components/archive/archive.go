// Package archive lists archived habits so they can be restored or
// removed for good.
package archive

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/theme"
)

type RestoreHabitMsg struct {
	ID   int64
	Name string
}

type PurgeHabitMsg struct {
	ID   int64
	Name string
}

type Item struct {
	Habit models.Habit
	loc   *time.Location
}

func (i Item) Title() string {
	name := theme.Style(i.Habit.Color).Render(i.Habit.Name)
	return fmt.Sprintf("%s %s", theme.IconFor(i.Habit.Icon).Glyph, name)
}

func (i Item) Description() string {
	created := datekey.NormalizeIn(i.Habit.CreatedAt, i.loc)
	if i.Habit.ArchivedAt == nil {
		return fmt.Sprintf("created %s", created)
	}
	return fmt.Sprintf("created %s · archived %s", created, datekey.NormalizeIn(*i.Habit.ArchivedAt, i.loc))
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Restore key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete forever"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Archive"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	bindings := func() []key.Binding {
		return []key.Binding{keys.Restore, keys.Delete}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	return Model{list: l, keys: keys}
}

// SetHabits replaces the list. Dates are shown in loc.
func (m *Model) SetHabits(habits []models.Habit, loc *time.Location) {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h, loc: loc}
	}
	m.list.SetItems(items)
}

func (m Model) Len() int { return len(m.list.Items()) }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if i, ok := m.list.SelectedItem().(Item); ok {
			id, name := i.Habit.ID, i.Habit.Name
			switch {
			case key.Matches(msg, m.keys.Restore):
				return m, func() tea.Msg { return RestoreHabitMsg{ID: id, Name: name} }
			case key.Matches(msg, m.keys.Delete):
				return m, func() tea.Msg { return PurgeHabitMsg{ID: id, Name: name} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Archived habits (%d)", m.Len()))
	if m.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "  Nothing archived.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.list.View())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, max(height-2, 4))
}
