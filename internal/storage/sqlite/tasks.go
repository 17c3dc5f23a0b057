package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
)

const taskColumns = "id, title, description, due_date, reminder_time, priority, category, completed, created_at"

type taskRow struct {
	ID           string `db:"id"`
	Title        string `db:"title"`
	Description  string `db:"description"`
	DueDate      string `db:"due_date"`
	ReminderTime string `db:"reminder_time"`
	Priority     string `db:"priority"`
	Category     string `db:"category"`
	Completed    bool   `db:"completed"`
	CreatedAt    string `db:"created_at"`
}

func (r taskRow) toModel() (models.Task, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at for task %s: %w", r.ID, err)
	}
	return models.Task{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ReminderTime: r.ReminderTime,
		Priority:     r.Priority,
		Category:     r.Category,
		Completed:    r.Completed,
		CreatedAt:    created,
	}, nil
}

func (s *Store) AddTask(task models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, due_date, reminder_time, priority, category, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, task.DueDate, task.ReminderTime,
		task.Priority, task.Category, task.Completed, formatTime(task.CreatedAt))
	if err != nil {
		return fmt.Errorf("adding task %q: %w", task.Title, err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	var row taskRow
	err := s.db.Get(&row, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Task{}, err
	}
	return row.toModel()
}

func (s *Store) selectTasks(query string, args ...interface{}) ([]models.Task, error) {
	var rows []taskRow
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(rows))
	for _, r := range rows {
		t, err := r.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	return s.selectTasks("SELECT " + taskColumns + " FROM tasks ORDER BY due_date, created_at")
}

func (s *Store) GetTasksForDay(day string) ([]models.Task, error) {
	return s.selectTasks("SELECT "+taskColumns+" FROM tasks WHERE due_date = ? ORDER BY created_at", day)
}

func (s *Store) UpdateTask(task models.Task) error {
	return s.exec("task", task.ID, `
		UPDATE tasks SET title = ?, description = ?, due_date = ?, reminder_time = ?,
			priority = ?, category = ?, completed = ?
		WHERE id = ?`,
		task.Title, task.Description, task.DueDate, task.ReminderTime,
		task.Priority, task.Category, task.Completed, task.ID)
}

func (s *Store) DeleteTask(id string) error {
	return s.exec("task", id, "DELETE FROM tasks WHERE id = ?", id)
}
