package handlers

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage/sqlite"
	"github.com/avinash6817/habit-ticker/internal/tracker"
	"github.com/avinash6817/habit-ticker/internal/tui/components/archive"
	"github.com/avinash6817/habit-ticker/internal/tui/components/habits"
	"github.com/avinash6817/habit-ticker/internal/tui/components/schedule"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func setupModel(t *testing.T) (*state.Model, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := tracker.New(store, datekey.FixedClock{T: now}, time.UTC)
	m := state.New(store, svc, models.DefaultSettings())
	return &m, store
}

func TestHandleGlobalKeys(t *testing.T) {
	m, _ := setupModel(t)

	handled, _ := HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyTab})
	if !handled || m.State != constants.StateSchedule {
		t.Fatalf("tab: handled=%v state=%v", handled, m.State)
	}
	HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State != constants.StateHabits {
		t.Fatalf("shift+tab: state=%v", m.State)
	}
	HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State != constants.StateArchive {
		t.Fatalf("shift+tab from habits: state=%v, want archive", m.State)
	}
	HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State != constants.StateHabits {
		t.Fatalf("tab from archive: state=%v, want habits", m.State)
	}

	m.State = constants.StateAddHabit
	if handled, _ := HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); handled {
		t.Error("q should reach the form while it is open")
	}

	m.State = constants.StateHabits
	handled, cmd := HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !handled || cmd == nil || !m.Quitting {
		t.Error("q should quit from a main view")
	}
}

func TestHandleHabitMessages_Toggle(t *testing.T) {
	m, store := setupModel(t)
	h, err := store.AddHabit(models.Habit{Name: "Read", Color: "green", Icon: "book", CreatedAt: now.AddDate(0, 0, -1)})
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	m.RefreshHabits()

	tests := []struct {
		day        string
		wantStatus string
		wantDone   bool
	}{
		{day: "2024-03-10", wantStatus: "Marked 2024-03-10", wantDone: true},
		{day: "2024-03-10", wantStatus: "Unmarked 2024-03-10"},
		{day: "2024-03-08", wantStatus: "before this habit was created"},
		{day: "2024-03-11", wantStatus: "future day"},
	}
	for _, tt := range tests {
		handled, _ := HandleHabitMessages(m, habits.ToggleHabitMsg{ID: h.ID, Day: datekey.MustParse(tt.day)})
		if !handled {
			t.Fatalf("toggle %s not handled", tt.day)
		}
		if !strings.Contains(m.Status, tt.wantStatus) {
			t.Errorf("toggle %s: status = %q, want %q", tt.day, m.Status, tt.wantStatus)
		}
	}

	card, ok := m.HabitsModel.SelectedCard()
	if !ok || card.DoneOn {
		t.Errorf("selected card = %+v, ok=%v", card, ok)
	}
}

func TestHandleHabitMessages_DeleteNeedsConfirmation(t *testing.T) {
	m, store := setupModel(t)
	h, err := store.AddHabit(models.Habit{Name: "Read", CreatedAt: now})
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	m.RefreshHabits()

	HandleHabitMessages(m, habits.DeleteHabitMsg{ID: h.ID, Name: h.Name})
	if m.State != constants.StateConfirmDelete || m.PendingAction == nil {
		t.Fatalf("state=%v pending=%v", m.State, m.PendingAction != nil)
	}
	if _, err := store.GetHabit(h.ID); err != nil {
		t.Fatal("habit deleted before confirmation")
	}

	action := m.PendingAction
	m.Return()
	if m.State != constants.StateHabits {
		t.Errorf("Return() state = %v", m.State)
	}
	action(m)
	if _, err := store.GetHabit(h.ID); err == nil {
		t.Error("habit still present after confirmed delete")
	}
}

func TestHandleHabitMessages_AddOpensForm(t *testing.T) {
	m, _ := setupModel(t)
	HandleHabitMessages(m, habits.AddHabitMsg{})
	if m.State != constants.StateAddHabit || m.Form == nil {
		t.Fatalf("state=%v form=%v", m.State, m.Form != nil)
	}
	if m.HabitForm.Color != "green" || m.HabitForm.Icon != "flame" {
		t.Errorf("form defaults = %+v", m.HabitForm)
	}

	HandleAddHabitState(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State != constants.StateHabits || m.Form != nil {
		t.Errorf("esc: state=%v form=%v", m.State, m.Form != nil)
	}
}

func TestHandleEditHabit(t *testing.T) {
	m, store := setupModel(t)
	read, err := store.AddHabit(models.Habit{Name: "Read", Color: "green", Icon: "book", CreatedAt: now})
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if _, err := store.AddHabit(models.Habit{Name: "Run", Color: "red", Icon: "flame", CreatedAt: now}); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	m.RefreshHabits()

	HandleHabitMessages(m, habits.EditHabitMsg{ID: read.ID})
	if m.State != constants.StateEditHabit || m.Form == nil {
		t.Fatalf("state=%v form=%v", m.State, m.Form != nil)
	}
	if m.HabitForm.ID != read.ID || m.HabitForm.Name != "Read" || m.HabitForm.Icon != "book" {
		t.Fatalf("form = %+v", m.HabitForm)
	}

	// A clashing name keeps the form open with the error shown.
	m.HabitForm.Name = "run"
	m.Form.State = huh.StateCompleted
	HandleEditHabitState(m, nil)
	if m.State != constants.StateEditHabit || m.FormError == "" {
		t.Fatalf("duplicate name: state=%v error=%q", m.State, m.FormError)
	}

	m.HabitForm.Name = " Read daily "
	m.HabitForm.Color = "blue"
	m.Form.State = huh.StateCompleted
	HandleEditHabitState(m, nil)
	if m.State != constants.StateHabits || m.Form != nil {
		t.Fatalf("after save: state=%v form=%v", m.State, m.Form != nil)
	}
	got, err := store.GetHabit(read.ID)
	if err != nil || got.Name != "Read daily" || got.Color != "blue" {
		t.Errorf("stored habit = %+v, %v", got, err)
	}
	if !strings.Contains(m.Status, "Updated Read daily") {
		t.Errorf("status = %q", m.Status)
	}
}

func TestHandleArchiveMessages(t *testing.T) {
	m, store := setupModel(t)
	keep, err := store.AddHabit(models.Habit{Name: "Read", CreatedAt: now})
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	purge, err := store.AddHabit(models.Habit{Name: "Run", CreatedAt: now})
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	m.RefreshHabits()

	HandleHabitMessages(m, habits.ArchiveHabitMsg{ID: keep.ID})
	HandleHabitMessages(m, habits.ArchiveHabitMsg{ID: purge.ID})
	if n := m.ArchiveModel.Len(); n != 2 {
		t.Fatalf("archive has %d habits, want 2", n)
	}

	m.State = constants.StateArchive
	HandleArchiveMessages(m, archive.RestoreHabitMsg{ID: keep.ID, Name: keep.Name})
	if m.State != constants.StateConfirmDelete || m.ConfirmDanger {
		t.Fatalf("restore: state=%v danger=%v", m.State, m.ConfirmDanger)
	}
	action := m.PendingAction
	m.Return()
	action(m)
	if h, err := store.GetHabit(keep.ID); err != nil || h.IsArchived() {
		t.Errorf("restored habit = %+v, %v", h, err)
	}
	if _, ok := m.HabitsModel.SelectedCard(); !ok {
		t.Error("restored habit missing from the habits view")
	}

	HandleArchiveMessages(m, archive.PurgeHabitMsg{ID: purge.ID, Name: purge.Name})
	if m.State != constants.StateConfirmDelete || !m.ConfirmDanger {
		t.Fatalf("purge: state=%v danger=%v", m.State, m.ConfirmDanger)
	}
	if _, err := store.GetHabit(purge.ID); err != nil {
		t.Fatal("habit purged before confirmation")
	}
	action = m.PendingAction
	m.Return()
	if m.State != constants.StateArchive {
		t.Errorf("Return() state = %v, want archive", m.State)
	}
	action(m)
	if _, err := store.GetHabit(purge.ID); err == nil {
		t.Error("habit still present after confirmed purge")
	}
	if n := m.ArchiveModel.Len(); n != 0 {
		t.Errorf("archive has %d habits after restore and purge", n)
	}
}

func TestHandleScheduleMessages(t *testing.T) {
	m, store := setupModel(t)
	m.State = constants.StateSchedule
	if err := store.AddTask(models.Task{ID: "t1", Title: "Gym", DueDate: "2024-03-10", Priority: "low", Category: "health"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	m.RefreshTasks()

	HandleScheduleMessages(m, schedule.ToggleTaskMsg{ID: "t1"})
	task, _ := store.GetTask("t1")
	if !task.Completed {
		t.Error("task not completed")
	}
	if d, ok := m.ScheduleModel.Today(); !ok || d.Progress.Completed != 1 {
		t.Errorf("today = %+v, ok=%v", d, ok)
	}

	HandleScheduleMessages(m, schedule.AddTaskMsg{})
	if m.State != constants.StateAddTask || m.TaskForm.Due != "2024-03-10" {
		t.Fatalf("state=%v form=%+v", m.State, m.TaskForm)
	}
	m.Return()
	if m.State != constants.StateSchedule {
		t.Errorf("Return() state = %v", m.State)
	}
}

func TestTaskFromForm(t *testing.T) {
	tests := []struct {
		name    string
		form    state.TaskFormModel
		wantErr bool
		want    string
	}{
		{name: "valid", form: state.TaskFormModel{Title: " Gym ", Due: "2024-03-10", Reminder: "7:00 am", Priority: "low", Category: "health"}, want: "07:00 AM"},
		{name: "no reminder", form: state.TaskFormModel{Title: "Gym", Due: "2024-03-10", Priority: "low", Category: "health"}},
		{name: "bad reminder", form: state.TaskFormModel{Title: "Gym", Due: "2024-03-10", Reminder: "noon", Priority: "low", Category: "health"}, wantErr: true},
		{name: "bad due", form: state.TaskFormModel{Title: "Gym", Due: "tomorrow", Priority: "low", Category: "health"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := taskFromForm(&tt.form)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("taskFromForm failed: %v", err)
			}
			if task.Title != "Gym" || task.ReminderTime != tt.want || task.ID == "" {
				t.Errorf("task = %+v", task)
			}
		})
	}
}
