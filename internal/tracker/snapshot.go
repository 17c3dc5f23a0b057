package tracker

import (
	"fmt"
	"time"

	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/ratio"
)

// HabitView is a stored habit translated to date keys.
type HabitView struct {
	Habit       models.Habit
	Created     datekey.DateKey
	Completions datekey.Set
}

// Snapshot is a consistent read of habits and their completions taken at
// one moment. Everything computed from it is pure.
type Snapshot struct {
	Habits []HabitView
}

// buildSnapshot groups entries under their habits. Entries for habits not
// in the list are skipped. A malformed entry day or creation time is an
// error.
func buildSnapshot(habits []models.Habit, entries []models.HabitEntry, loc *time.Location) (Snapshot, error) {
	views := make([]HabitView, len(habits))
	index := make(map[int64]int, len(habits))
	for i, h := range habits {
		created, err := datekey.NormalizeChecked(h.CreatedAt, loc)
		if err != nil {
			return Snapshot{}, fmt.Errorf("habit %d created_at: %w", h.ID, err)
		}
		views[i] = HabitView{Habit: h, Created: created}
		index[h.ID] = i
	}

	for _, e := range entries {
		i, ok := index[e.HabitID]
		if !ok {
			continue
		}
		day, err := datekey.Parse(e.Day)
		if err != nil {
			return Snapshot{}, fmt.Errorf("habit %d entry %s: %w", e.HabitID, e.ID, err)
		}
		views[i].Completions.Add(day)
	}
	return Snapshot{Habits: views}, nil
}

// Find returns the habit with the given ID.
func (sn Snapshot) Find(id int64) (HabitView, bool) {
	for _, h := range sn.Habits {
		if h.Habit.ID == id {
			return h, true
		}
	}
	return HabitView{}, false
}

// RatioHabits returns the minimal view the ratio aggregator needs.
func (sn Snapshot) RatioHabits() []ratio.Habit {
	out := make([]ratio.Habit, len(sn.Habits))
	for i, h := range sn.Habits {
		out[i] = ratio.Habit{ID: h.Habit.ID, CreatedAt: h.Created, Completions: h.Completions}
	}
	return out
}
