package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/theme"
	"github.com/avinash6817/habit-ticker/internal/tracker"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID  int64
	Day datekey.DateKey
}

type EditHabitMsg struct {
	ID int64
}

type ArchiveHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID   int64
	Name string
}

type MoveHabitMsg struct {
	ID    int64
	Delta int
}

type Item struct {
	Card tracker.Card
}

func (i Item) Title() string {
	mark := "○"
	if i.Card.DoneOn {
		mark = theme.Filled(i.Card.Habit.Color).Render("✓")
	}
	name := theme.Style(i.Card.Habit.Color).Render(i.Card.Habit.Name)
	return fmt.Sprintf("%s %s %s", mark, theme.IconFor(i.Card.Habit.Icon).Glyph, name)
}

func (i Item) Description() string { return StreakLine(i.Card) }

func (i Item) FilterValue() string { return i.Card.Habit.Name }

type KeyMap struct {
	Toggle   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Archive  key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
	}
}

// Model shows the month scroller, the habit list for the selected day and
// the heatmap of the highlighted habit.
type Model struct {
	list     list.Model
	keys     KeyMap
	snapshot tracker.Snapshot
	today    datekey.DateKey
	selected datekey.DateKey
	window   int
	scroller []tracker.ScrollerDay
	width    int
}

func New(window, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	bindings := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Edit, keys.Archive, keys.Delete, keys.MoveUp, keys.MoveDown, keys.PrevDay, keys.NextDay}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	return Model{list: l, keys: keys, window: window, width: width}
}

// SetSnapshot replaces the data and rebuilds cards. The selected day is
// kept unless it is now in the future or was never set.
func (m *Model) SetSnapshot(sn tracker.Snapshot, today datekey.DateKey) {
	m.snapshot = sn
	m.today = today
	if m.selected.IsZero() || m.selected.After(today) {
		m.selected = today
	}
	m.rebuild()
}

func (m Model) Scroller() []tracker.ScrollerDay { return m.scroller }

// SelectDay moves the selection. Future days are refused.
func (m *Model) SelectDay(day datekey.DateKey) bool {
	if day.IsZero() || day.After(m.today) {
		return false
	}
	m.selected = day
	m.rebuild()
	return true
}

// SelectedCard returns the highlighted habit's card.
func (m Model) SelectedCard() (tracker.Card, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Card, true
	}
	return tracker.Card{}, false
}

func (m *Model) rebuild() {
	if m.today.IsZero() {
		return
	}
	cards := m.snapshot.Cards(m.today, m.selected, m.window)
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = Item{Card: c}
	}
	m.list.SetItems(items)
	m.scroller = tracker.ScrollerDays(m.snapshot.RatioHabits(), m.selected, m.today)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.PrevDay):
			m.SelectDay(m.selected.Prev())
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			m.SelectDay(m.selected.Next())
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.SelectDay(m.today)
			return m, nil
		}

		i, ok := m.list.SelectedItem().(Item)
		if !ok {
			break
		}
		id := i.Card.Habit.ID
		switch {
		case key.Matches(msg, m.keys.Toggle):
			day := m.selected
			return m, func() tea.Msg { return ToggleHabitMsg{ID: id, Day: day} }
		case key.Matches(msg, m.keys.Edit):
			return m, func() tea.Msg { return EditHabitMsg{ID: id} }
		case key.Matches(msg, m.keys.Archive):
			return m, func() tea.Msg { return ArchiveHabitMsg{ID: id} }
		case key.Matches(msg, m.keys.Delete):
			name := i.Card.Habit.Name
			return m, func() tea.Msg { return DeleteHabitMsg{ID: id, Name: name} }
		case key.Matches(msg, m.keys.MoveUp):
			m.list.CursorUp()
			return m, func() tea.Msg { return MoveHabitMsg{ID: id, Delta: -1} }
		case key.Matches(msg, m.keys.MoveDown):
			m.list.CursorDown()
			return m, func() tea.Msg { return MoveHabitMsg{ID: id, Delta: 1} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

func (m Model) View() string {
	header := headerStyle.Render(m.selected.Time().Format("Monday, January 2 2006"))
	top := lipgloss.JoinVertical(lipgloss.Left, header, Scroller(m.scroller, m.selected.String()))

	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, top, "\n  No habits yet.\n  Press 'a' to add one.")
	}

	parts := []string{top, "", m.list.View()}
	if card, ok := m.SelectedCard(); ok {
		width := 30
		if m.width > 10 {
			width = min(m.width-4, 50)
		}
		parts = append(parts, "", Heatmap(card.Heatmap, card.Habit.Color, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	// Scroller (up to 6 rows) and heatmap take the rest.
	m.list.SetSize(width, max(height-14, 4))
}
