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

const entryColumns = "id, habit_id, day, note, created_at"

type entryRow struct {
	ID        string `db:"id"`
	HabitID   int64  `db:"habit_id"`
	Day       string `db:"day"`
	Note      string `db:"note"`
	CreatedAt string `db:"created_at"`
}

func (r entryRow) toModel() (models.HabitEntry, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", r.ID, err)
	}
	return models.HabitEntry{
		ID:        r.ID,
		HabitID:   r.HabitID,
		Day:       r.Day,
		Note:      r.Note,
		CreatedAt: created,
	}, nil
}

// AddHabitEntry inserts a completion. An entry for the same habit and day
// replaces the previous one.
func (s *Store) AddHabitEntry(entry models.HabitEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO habit_entries (id, habit_id, day, note, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (habit_id, day) DO UPDATE SET note = excluded.note`,
		entry.ID, entry.HabitID, entry.Day, entry.Note, formatTime(entry.CreatedAt))
	if err != nil {
		return fmt.Errorf("adding entry for habit %d on %s: %w", entry.HabitID, entry.Day, err)
	}
	return nil
}

func (s *Store) GetHabitEntry(habitID int64, day string) (models.HabitEntry, error) {
	var row entryRow
	err := s.db.Get(&row, "SELECT "+entryColumns+" FROM habit_entries WHERE habit_id = ? AND day = ?", habitID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitEntry{}, fmt.Errorf("entry for habit %d on %s: %w", habitID, day, storage.ErrNotFound)
	}
	if err != nil {
		return models.HabitEntry{}, err
	}
	return row.toModel()
}

func (s *Store) DeleteHabitEntry(id string) error {
	return s.exec("entry", id, "DELETE FROM habit_entries WHERE id = ?", id)
}

func (s *Store) selectEntries(query string, args ...interface{}) ([]models.HabitEntry, error) {
	var rows []entryRow
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	entries := make([]models.HabitEntry, 0, len(rows))
	for _, r := range rows {
		e, err := r.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// GetHabitEntriesForHabit returns entries with startDay <= day <= endDay.
// Day keys sort lexically in date order, so the range is a string compare.
func (s *Store) GetHabitEntriesForHabit(habitID int64, startDay, endDay string) ([]models.HabitEntry, error) {
	return s.selectEntries(
		"SELECT "+entryColumns+" FROM habit_entries WHERE habit_id = ? AND day >= ? AND day <= ? ORDER BY day",
		habitID, startDay, endDay)
}

func (s *Store) GetAllHabitEntries() ([]models.HabitEntry, error) {
	return s.selectEntries("SELECT " + entryColumns + " FROM habit_entries ORDER BY habit_id, day")
}
