package handlers

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/tracker"
	"github.com/avinash6817/habit-ticker/internal/tui/components/habits"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
)

// HandleAddHabitState drives the add habit form
func HandleAddHabitState(m *state.Model, msg tea.Msg) tea.Cmd {
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
		habit, err := m.Tracker.CreateHabit(m.HabitForm.Name, m.HabitForm.Color, m.HabitForm.Icon)
		if err != nil {
			// Keep the form open so the name can be fixed.
			m.FormError = err.Error()
			m.Form = NewHabitForm(m.HabitForm)
			return m.Form.Init()
		}
		m.Return()
		m.RefreshHabits()
		m.Status = fmt.Sprintf("Added %s", habit.Name)
		return nil
	case huh.StateAborted:
		m.Return()
		return nil
	}
	return cmd
}

// HandleEditHabitState drives the edit habit form
func HandleEditHabitState(m *state.Model, msg tea.Msg) tea.Cmd {
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
		habit, err := m.Store.GetHabit(m.HabitForm.ID)
		if err != nil {
			m.Return()
			m.Status = fmt.Sprintf("edit failed: %v", err)
			return nil
		}
		habit.Name = m.HabitForm.Name
		habit.Color = m.HabitForm.Color
		habit.Icon = m.HabitForm.Icon
		if err := m.Tracker.UpdateHabit(habit); err != nil {
			m.FormError = err.Error()
			m.Form = NewHabitForm(m.HabitForm)
			return m.Form.Init()
		}
		m.Return()
		m.RefreshHabits()
		m.Status = fmt.Sprintf("Updated %s", strings.TrimSpace(habit.Name))
		return nil
	case huh.StateAborted:
		m.Return()
		return nil
	}
	return cmd
}

// HandleHabitMessages handles messages from the habits component
func HandleHabitMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.HabitForm = &state.HabitFormModel{
			Color: m.Settings.DefaultColor,
			Icon:  m.Settings.DefaultIcon,
		}
		return true, m.Open(constants.StateAddHabit, NewHabitForm(m.HabitForm))

	case habits.EditHabitMsg:
		habit, err := m.Store.GetHabit(msg.ID)
		if err != nil {
			m.Status = fmt.Sprintf("edit failed: %v", err)
			return true, nil
		}
		m.HabitForm = &state.HabitFormModel{
			ID:    habit.ID,
			Name:  habit.Name,
			Color: habit.Color,
			Icon:  habit.Icon,
		}
		return true, m.Open(constants.StateEditHabit, NewHabitForm(m.HabitForm))

	case habits.ToggleHabitMsg:
		done, err := m.Tracker.Toggle(msg.ID, msg.Day)
		switch {
		case errors.Is(err, tracker.ErrBeforeCreation):
			m.Status = fmt.Sprintf("%s is before this habit was created", msg.Day)
			return true, nil
		case errors.Is(err, tracker.ErrFutureDay):
			m.Status = "cannot complete a future day"
			return true, nil
		case err != nil:
			m.Status = fmt.Sprintf("toggle failed: %v", err)
			return true, nil
		}
		m.RefreshHabits()
		if done {
			m.Status = fmt.Sprintf("Marked %s", msg.Day)
		} else {
			m.Status = fmt.Sprintf("Unmarked %s", msg.Day)
		}
		return true, nil

	case habits.ArchiveHabitMsg:
		if err := m.Store.ArchiveHabit(msg.ID); err != nil {
			m.Status = fmt.Sprintf("archive failed: %v", err)
			return true, nil
		}
		m.RefreshHabits()
		m.RefreshArchive()
		m.Status = "Archived. Restore it from the Archive tab."
		return true, nil

	case habits.DeleteHabitMsg:
		id, name := msg.ID, msg.Name
		return true, Confirm(m, fmt.Sprintf("Delete %q and all of its history?", name), func(m *state.Model) tea.Cmd {
			if err := m.Store.DeleteHabit(id); err != nil {
				m.Status = fmt.Sprintf("delete failed: %v", err)
				return nil
			}
			m.RefreshHabits()
			m.Status = fmt.Sprintf("Deleted %s", name)
			return nil
		})

	case habits.MoveHabitMsg:
		if err := m.Tracker.Move(msg.ID, msg.Delta); err != nil {
			m.Status = fmt.Sprintf("reorder failed: %v", err)
			return true, nil
		}
		m.RefreshHabits()
		return true, nil
	}
	return false, nil
}
