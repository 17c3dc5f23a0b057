package postgres

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

func (s *Store) AddTask(task models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	_, err := s.db.NamedExec(`
		INSERT INTO tasks (id, title, description, due_date, reminder_time, priority, category, completed, created_at)
		VALUES (:id, :title, :description, :due_date, :reminder_time, :priority, :category, :completed, :created_at)`, task)
	if err != nil {
		return fmt.Errorf("adding task %q: %w", task.Title, err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	var t models.Task
	err := s.db.Get(&t, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}
	return t, err
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.db.Select(&tasks, "SELECT "+taskColumns+" FROM tasks ORDER BY due_date, created_at")
	return tasks, err
}

func (s *Store) GetTasksForDay(day string) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.db.Select(&tasks, "SELECT "+taskColumns+" FROM tasks WHERE due_date = $1 ORDER BY created_at", day)
	return tasks, err
}

func (s *Store) UpdateTask(task models.Task) error {
	res, err := s.db.NamedExec(`
		UPDATE tasks SET title = :title, description = :description, due_date = :due_date,
			reminder_time = :reminder_time, priority = :priority, category = :category,
			completed = :completed
		WHERE id = :id`, task)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", task.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s: %w", task.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteTask(id string) error {
	return s.exec("task", id, "DELETE FROM tasks WHERE id = $1", id)
}
