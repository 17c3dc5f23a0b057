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

const entryColumns = "id, habit_id, day, note, created_at"

func (s *Store) AddHabitEntry(entry models.HabitEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.db.NamedExec(`
		INSERT INTO habit_entries (id, habit_id, day, note, created_at)
		VALUES (:id, :habit_id, :day, :note, :created_at)
		ON CONFLICT (habit_id, day) DO UPDATE SET note = EXCLUDED.note`, entry)
	if err != nil {
		return fmt.Errorf("adding entry for habit %d on %s: %w", entry.HabitID, entry.Day, err)
	}
	return nil
}

func (s *Store) GetHabitEntry(habitID int64, day string) (models.HabitEntry, error) {
	var e models.HabitEntry
	err := s.db.Get(&e, "SELECT "+entryColumns+" FROM habit_entries WHERE habit_id = $1 AND day = $2", habitID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitEntry{}, fmt.Errorf("entry for habit %d on %s: %w", habitID, day, storage.ErrNotFound)
	}
	return e, err
}

func (s *Store) DeleteHabitEntry(id string) error {
	return s.exec("entry", id, "DELETE FROM habit_entries WHERE id = $1", id)
}

func (s *Store) GetHabitEntriesForHabit(habitID int64, startDay, endDay string) ([]models.HabitEntry, error) {
	entries := []models.HabitEntry{}
	err := s.db.Select(&entries,
		"SELECT "+entryColumns+" FROM habit_entries WHERE habit_id = $1 AND day BETWEEN $2 AND $3 ORDER BY day",
		habitID, startDay, endDay)
	return entries, err
}

func (s *Store) GetAllHabitEntries() ([]models.HabitEntry, error) {
	entries := []models.HabitEntry{}
	err := s.db.Select(&entries, "SELECT "+entryColumns+" FROM habit_entries ORDER BY habit_id, day")
	return entries, err
}
