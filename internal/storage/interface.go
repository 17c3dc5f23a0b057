package storage

import (
	"errors"
	"strings"

	"github.com/avinash6817/habit-ticker/internal/models"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	// AddHabit stores a new habit at the end of the display order and
	// returns it with its assigned ID and order.
	AddHabit(models.Habit) (models.Habit, error)
	GetHabit(id int64) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	GetArchivedHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id int64) error
	RestoreHabit(id int64) error
	// DeleteHabit removes the habit and all of its entries permanently.
	DeleteHabit(id int64) error
	// ReorderHabits applies every position in one transaction.
	ReorderHabits([]models.HabitOrder) error

	// Habit Entries
	AddHabitEntry(models.HabitEntry) error
	GetHabitEntry(habitID int64, day string) (models.HabitEntry, error)
	DeleteHabitEntry(id string) error
	GetHabitEntriesForHabit(habitID int64, startDay, endDay string) ([]models.HabitEntry, error)
	GetAllHabitEntries() ([]models.HabitEntry, error)

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	GetTasksForDay(day string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Utils
	GetConfigPath() string
}

// IsPostgresDSN reports whether target names a PostgreSQL database rather
// than a SQLite file path.
func IsPostgresDSN(target string) bool {
	return strings.HasPrefix(target, "postgres://") ||
		strings.HasPrefix(target, "postgresql://") ||
		strings.Contains(target, "host=") ||
		strings.Contains(target, "dbname=")
}
