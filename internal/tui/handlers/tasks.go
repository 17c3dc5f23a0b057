package handlers

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/tui/components/schedule"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
	"github.com/avinash6817/habit-ticker/internal/utils"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

// HandleAddTaskState drives the add task form
func HandleAddTaskState(m *state.Model, msg tea.Msg) tea.Cmd {
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
		task, err := taskFromForm(m.TaskForm)
		if err == nil {
			err = m.Store.AddTask(task)
		}
		if err != nil {
			m.FormError = err.Error()
			m.Form = NewTaskForm(m.TaskForm)
			return m.Form.Init()
		}
		m.Return()
		m.RefreshTasks()
		m.Status = fmt.Sprintf("Added task %s", task.Title)
		return nil
	case huh.StateAborted:
		m.Return()
		return nil
	}
	return cmd
}

func taskFromForm(fm *state.TaskFormModel) (models.Task, error) {
	task := models.Task{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		DueDate:     strings.TrimSpace(fm.Due),
		Priority:    fm.Priority,
		Category:    fm.Category,
	}
	if r := strings.TrimSpace(fm.Reminder); r != "" {
		norm, err := utils.NormalizeReminderTime(r)
		if err != nil {
			return models.Task{}, err
		}
		task.ReminderTime = norm
	}
	result := validation.New().ValidateTask(task)
	if err := result.Err(); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// HandleScheduleMessages handles messages from the schedule component
func HandleScheduleMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case schedule.AddTaskMsg:
		m.TaskForm = &state.TaskFormModel{
			Due:      m.Tracker.Today().String(),
			Reminder: constants.DefaultReminderTime,
			Priority: constants.PriorityMedium,
			Category: constants.CategoryPersonal,
		}
		return true, m.Open(constants.StateAddTask, NewTaskForm(m.TaskForm))

	case schedule.ToggleTaskMsg:
		task, err := m.Store.GetTask(msg.ID)
		if err == nil {
			task.Completed = !task.Completed
			err = m.Store.UpdateTask(task)
		}
		if err != nil {
			m.Status = fmt.Sprintf("update failed: %v", err)
			return true, nil
		}
		m.RefreshTasks()
		return true, nil

	case schedule.DeleteTaskMsg:
		id, title := msg.ID, msg.Title
		return true, Confirm(m, fmt.Sprintf("Delete task %q?", title), func(m *state.Model) tea.Cmd {
			if err := m.Store.DeleteTask(id); err != nil {
				m.Status = fmt.Sprintf("delete failed: %v", err)
				return nil
			}
			m.RefreshTasks()
			m.Status = fmt.Sprintf("Deleted task %s", title)
			return nil
		})
	}
	return false, nil
}
