package models

import "time"

// Habit represents a daily practice to track
type Habit struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Color      string     `json:"color" db:"color"`
	Icon       string     `json:"icon" db:"icon"`
	Order      int        `json:"order" db:"sort_order"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty" db:"archived_at"`
}

// IsArchived reports whether the habit has been moved to the archive.
func (h Habit) IsArchived() bool {
	return h.ArchivedAt != nil
}

// HabitEntry represents a single day's completion of a habit
type HabitEntry struct {
	ID        string    `json:"id" db:"id"`
	HabitID   int64     `json:"habit_id" db:"habit_id"`
	Day       string    `json:"day" db:"day"` // YYYY-MM-DD format
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HabitOrder assigns a display position to a habit
type HabitOrder struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}
