package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
)

const habitColumns = "id, name, color, icon, sort_order, created_at, archived_at"

func (s *Store) AddHabit(habit models.Habit) (models.Habit, error) {
	if strings.TrimSpace(habit.Name) == "" {
		return models.Habit{}, errors.New("habit name is required")
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return models.Habit{}, err
	}
	defer tx.Rollback()

	// Serialize concurrent adds so two habits never share an order.
	if _, err := tx.Exec("LOCK TABLE habits IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		return models.Habit{}, fmt.Errorf("locking habits: %w", err)
	}
	if err := tx.Get(&habit.Order, "SELECT COALESCE(MAX(sort_order) + 1, 0) FROM habits"); err != nil {
		return models.Habit{}, fmt.Errorf("reading habit order: %w", err)
	}

	err = tx.Get(&habit.ID, `
		INSERT INTO habits (name, color, icon, sort_order, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		habit.Name, habit.Color, habit.Icon, habit.Order, habit.CreatedAt, habit.ArchivedAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("inserting habit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Store) getHabitWhere(where string, arg interface{}) (models.Habit, error) {
	var h models.Habit
	err := s.db.Get(&h, "SELECT "+habitColumns+" FROM habits WHERE "+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %v: %w", arg, storage.ErrNotFound)
	}
	return h, err
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	return s.getHabitWhere("id = $1", id)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	return s.getHabitWhere("lower(name) = lower($1)", name)
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY sort_order, id"

	habits := []models.Habit{}
	err := s.db.Select(&habits, query)
	return habits, err
}

func (s *Store) GetArchivedHabits() ([]models.Habit, error) {
	habits := []models.Habit{}
	err := s.db.Select(&habits, "SELECT "+habitColumns+" FROM habits WHERE archived_at IS NOT NULL ORDER BY archived_at DESC, id")
	return habits, err
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	if strings.TrimSpace(habit.Name) == "" {
		return errors.New("habit name is required")
	}
	return s.exec("habit", habit.ID,
		"UPDATE habits SET name = $1, color = $2, icon = $3 WHERE id = $4",
		habit.Name, habit.Color, habit.Icon, habit.ID)
}

func (s *Store) ArchiveHabit(id int64) error {
	return s.exec("habit", id,
		"UPDATE habits SET archived_at = COALESCE(archived_at, $1) WHERE id = $2", time.Now(), id)
}

func (s *Store) RestoreHabit(id int64) error {
	return s.exec("habit", id, "UPDATE habits SET archived_at = NULL WHERE id = $1", id)
}

// DeleteHabit relies on ON DELETE CASCADE to drop the habit's entries.
func (s *Store) DeleteHabit(id int64) error {
	return s.exec("habit", id, "DELETE FROM habits WHERE id = $1", id)
}

func (s *Store) ReorderHabits(orders []models.HabitOrder) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, o := range orders {
		res, err := tx.Exec("UPDATE habits SET sort_order = $1 WHERE id = $2", o.Order, o.ID)
		if err != nil {
			return fmt.Errorf("reordering habit %d: %w", o.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %d: %w", o.ID, storage.ErrNotFound)
		}
	}
	return tx.Commit()
}
