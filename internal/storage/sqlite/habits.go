package sqlite

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

type habitRow struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	Color      string         `db:"color"`
	Icon       string         `db:"icon"`
	Order      int            `db:"sort_order"`
	CreatedAt  string         `db:"created_at"`
	ArchivedAt sql.NullString `db:"archived_at"`
}

func (r habitRow) toModel() (models.Habit, error) {
	h := models.Habit{
		ID:    r.ID,
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
		Order: r.Order,
	}
	var err error
	h.CreatedAt, err = parseTime(r.CreatedAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %d: %w", r.ID, err)
	}
	if r.ArchivedAt.Valid {
		t, err := parseTime(r.ArchivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at for habit %d: %w", r.ID, err)
		}
		h.ArchivedAt = &t
	}
	return h, nil
}

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

	var maxOrder sql.NullInt64
	if err := tx.Get(&maxOrder, "SELECT MAX(sort_order) FROM habits"); err != nil {
		return models.Habit{}, fmt.Errorf("reading habit order: %w", err)
	}
	habit.Order = 0
	if maxOrder.Valid {
		habit.Order = int(maxOrder.Int64) + 1
	}

	var archivedAt sql.NullString
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: formatTime(*habit.ArchivedAt), Valid: true}
	}

	res, err := tx.Exec(`
		INSERT INTO habits (name, color, icon, sort_order, created_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		habit.Name, habit.Color, habit.Icon, habit.Order, formatTime(habit.CreatedAt), archivedAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("inserting habit: %w", err)
	}
	habit.ID, err = res.LastInsertId()
	if err != nil {
		return models.Habit{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Store) getHabitWhere(where string, arg interface{}) (models.Habit, error) {
	var row habitRow
	err := s.db.Get(&row, "SELECT "+habitColumns+" FROM habits WHERE "+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %v: %w", arg, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, err
	}
	return row.toModel()
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	return s.getHabitWhere("id = ?", id)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	return s.getHabitWhere("name = ? COLLATE NOCASE", name)
}

func (s *Store) selectHabits(query string) ([]models.Habit, error) {
	var rows []habitRow
	if err := s.db.Select(&rows, query); err != nil {
		return nil, err
	}
	habits := make([]models.Habit, 0, len(rows))
	for _, r := range rows {
		h, err := r.toModel()
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY sort_order, id"
	return s.selectHabits(query)
}

func (s *Store) GetArchivedHabits() ([]models.Habit, error) {
	return s.selectHabits("SELECT " + habitColumns + " FROM habits WHERE archived_at IS NOT NULL ORDER BY archived_at DESC, id")
}

func (s *Store) exec(what string, id interface{}, query string, args ...interface{}) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", what, id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	if strings.TrimSpace(habit.Name) == "" {
		return errors.New("habit name is required")
	}
	return s.exec("habit", habit.ID,
		"UPDATE habits SET name = ?, color = ?, icon = ? WHERE id = ?",
		habit.Name, habit.Color, habit.Icon, habit.ID)
}

func (s *Store) ArchiveHabit(id int64) error {
	return s.exec("habit", id,
		"UPDATE habits SET archived_at = COALESCE(archived_at, ?) WHERE id = ?",
		formatTime(time.Now()), id)
}

func (s *Store) RestoreHabit(id int64) error {
	return s.exec("habit", id, "UPDATE habits SET archived_at = NULL WHERE id = ?", id)
}

func (s *Store) DeleteHabit(id int64) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_entries WHERE habit_id = ?", id); err != nil {
		return fmt.Errorf("deleting entries for habit %d: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting habit %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit %d: %w", id, storage.ErrNotFound)
	}
	return tx.Commit()
}

func (s *Store) ReorderHabits(orders []models.HabitOrder) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex("UPDATE habits SET sort_order = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range orders {
		res, err := stmt.Exec(o.Order, o.ID)
		if err != nil {
			return fmt.Errorf("reordering habit %d: %w", o.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %d: %w", o.ID, storage.ErrNotFound)
		}
	}
	return tx.Commit()
}
