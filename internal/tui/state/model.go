package state

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
	"github.com/avinash6817/habit-ticker/internal/tracker"
	"github.com/avinash6817/habit-ticker/internal/tui/components/archive"
	"github.com/avinash6817/habit-ticker/internal/tui/components/habits"
	"github.com/avinash6817/habit-ticker/internal/tui/components/schedule"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

// HabitFormModel backs the add and edit habit forms. ID is zero when
// adding.
type HabitFormModel struct {
	ID    int64
	Name  string
	Color string
	Icon  string
}

// TaskFormModel backs the add task form
type TaskFormModel struct {
	Title       string
	Description string
	Due         string
	Reminder    string
	Priority    string
	Category    string
}

type ConfirmationFormModel struct {
	Confirmed bool
}

// Model represents the shared state for the TUI
type Model struct {
	Store               storage.Provider
	Tracker             *tracker.Service
	Settings            models.Settings
	State               constants.SessionState
	PreviousState       constants.SessionState
	Keys                KeyMap
	Help                help.Model
	HabitsModel         habits.Model
	ScheduleModel       schedule.Model
	ArchiveModel        archive.Model
	Form                *huh.Form
	HabitForm           *HabitFormModel
	TaskForm            *TaskFormModel
	ConfirmationForm    *ConfirmationFormModel
	ConfirmMessage      string
	ConfirmDanger       bool
	PendingAction       func(*Model) tea.Cmd
	Status              string
	FormError           string
	ValidationWarning   string
	ValidationConflicts []validation.Conflict
	Quitting            bool
	Width               int
	Height              int
}

// New creates a new state Model and loads the initial data.
func New(store storage.Provider, svc *tracker.Service, settings models.Settings) Model {
	m := Model{
		Store:         store,
		Tracker:       svc,
		Settings:      settings,
		State:         constants.StateHabits,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		HabitsModel:   habits.New(settings.HeatmapDays, 0, 0),
		ScheduleModel: schedule.New(0, 0),
		ArchiveModel:  archive.New(0, 0),
	}
	m.RefreshHabits()
	m.RefreshTasks()
	m.RefreshArchive()
	return m
}

// MainViews are the tabbed views, in tab order.
var MainViews = []constants.SessionState{constants.StateHabits, constants.StateSchedule, constants.StateArchive}

// InMainView reports whether a tab is showing rather than a form.
func (m Model) InMainView() bool {
	for _, s := range MainViews {
		if m.State == s {
			return true
		}
	}
	return false
}

// RefreshHabits reloads active habits and their completions. A load error
// leaves the previous data on screen and reports it in the status line.
func (m *Model) RefreshHabits() {
	sn, err := m.Tracker.Snapshot(false)
	if err != nil {
		m.Status = fmt.Sprintf("failed to load habits: %v", err)
		m.UpdateValidationStatus()
		return
	}
	m.HabitsModel.SetSnapshot(sn, m.Tracker.Today())
	m.UpdateValidationStatus()
}

func (m *Model) RefreshTasks() {
	tasks, err := m.Store.GetAllTasks()
	if err != nil {
		m.Status = fmt.Sprintf("failed to load tasks: %v", err)
		return
	}
	m.ScheduleModel.SetTasks(tasks, m.Tracker.Today())
}

// RefreshArchive reloads archived habits.
func (m *Model) RefreshArchive() {
	archived, err := m.Tracker.Archived()
	if err != nil {
		m.Status = fmt.Sprintf("failed to load archive: %v", err)
		return
	}
	m.ArchiveModel.SetHabits(archived, m.Tracker.Location())
}

// Return goes back to the view that opened a form or confirmation.
func (m *Model) Return() {
	m.Form = nil
	m.HabitForm = nil
	m.TaskForm = nil
	m.ConfirmationForm = nil
	m.ConfirmMessage = ""
	m.ConfirmDanger = false
	m.PendingAction = nil
	m.FormError = ""
	m.State = m.PreviousState
}

// Open switches to a form state and remembers where to return.
func (m *Model) Open(s constants.SessionState, form *huh.Form) tea.Cmd {
	if m.InMainView() {
		m.PreviousState = m.State
	}
	m.Form = form
	m.FormError = ""
	m.State = s
	return form.Init()
}
