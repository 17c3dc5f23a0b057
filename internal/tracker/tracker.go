// Package tracker ties storage to the date-key core: it loads habits and
// completions, derives cards and scroller ratios, and applies toggles.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/logger"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

var (
	// ErrBeforeCreation is returned when toggling a day before the habit existed.
	ErrBeforeCreation = errors.New("day is before the habit was created")
	// ErrFutureDay is returned when toggling a day after today.
	ErrFutureDay = errors.New("day is in the future")
)

type Service struct {
	store storage.Provider
	clock datekey.Clock
	loc   *time.Location
	log   *log.Logger
}

// New returns a Service. A nil clock reads the system clock and a nil
// location means time.Local.
func New(store storage.Provider, clock datekey.Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = datekey.SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		store: store,
		clock: clock,
		loc:   loc,
		log:   logger.With("component", "tracker"),
	}
}

func (s *Service) Location() *time.Location { return s.loc }

// Today is the current day in the configured location.
func (s *Service) Today() datekey.DateKey {
	return datekey.Today(s.clock, s.loc)
}

// Snapshot loads habits and all entries. Archived habits are included
// only on request.
func (s *Service) Snapshot(includeArchived bool) (Snapshot, error) {
	habits, err := s.store.GetAllHabits(includeArchived)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading habits: %w", err)
	}
	entries, err := s.store.GetAllHabitEntries()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading habit entries: %w", err)
	}
	sn, err := buildSnapshot(habits, entries, s.loc)
	if err != nil {
		s.log.Error("snapshot rejected", "error", err)
		return Snapshot{}, err
	}
	s.log.Debug("snapshot loaded", "habits", len(habits), "entries", len(entries))
	return sn, nil
}

// View loads one habit with the entries between its creation day and
// today. Archived habits are found too.
func (s *Service) View(habitID int64) (HabitView, error) {
	h, err := s.store.GetHabit(habitID)
	if err != nil {
		return HabitView{}, err
	}
	created, err := datekey.NormalizeChecked(h.CreatedAt, s.loc)
	if err != nil {
		return HabitView{}, fmt.Errorf("habit %d created_at: %w", habitID, err)
	}
	entries, err := s.store.GetHabitEntriesForHabit(habitID, created.String(), s.Today().String())
	if err != nil {
		return HabitView{}, fmt.Errorf("loading entries for habit %d: %w", habitID, err)
	}
	sn, err := buildSnapshot([]models.Habit{h}, entries, s.loc)
	if err != nil {
		s.log.Error("habit view rejected", "habit", habitID, "error", err)
		return HabitView{}, err
	}
	return sn.Habits[0], nil
}

// Card builds one habit's card for today from its own entries.
func (s *Service) Card(habitID int64, window int) (Card, error) {
	view, err := s.View(habitID)
	if err != nil {
		return Card{}, err
	}
	today := s.Today()
	return BuildCard(view, today, today, window), nil
}

// Archived lists archived habits, most recently archived first.
func (s *Service) Archived() ([]models.Habit, error) {
	habits, err := s.store.GetArchivedHabits()
	if err != nil {
		return nil, fmt.Errorf("loading archived habits: %w", err)
	}
	return habits, nil
}

// Scroller returns ratios for every day in month's calendar month over
// the active habits.
func (s *Service) Scroller(month datekey.DateKey) ([]ScrollerDay, error) {
	sn, err := s.Snapshot(false)
	if err != nil {
		return nil, err
	}
	return ScrollerDays(sn.RatioHabits(), month, s.Today()), nil
}

// Toggle flips completion of habitID on day and returns the new state.
// Days before the habit's creation day and days after today are refused.
func (s *Service) Toggle(habitID int64, day datekey.DateKey) (bool, error) {
	if day.IsZero() {
		return false, fmt.Errorf("toggle: %w", datekey.ErrMalformed)
	}
	h, err := s.store.GetHabit(habitID)
	if err != nil {
		return false, err
	}

	if today := s.Today(); day.After(today) {
		return false, fmt.Errorf("%s (today is %s): %w", day, today, ErrFutureDay)
	}
	created, err := datekey.NormalizeChecked(h.CreatedAt, s.loc)
	if err != nil {
		return false, fmt.Errorf("habit %d created_at: %w", habitID, err)
	}
	if day.Before(created) {
		return false, fmt.Errorf("%s (created %s): %w", day, created, ErrBeforeCreation)
	}

	entry, err := s.store.GetHabitEntry(habitID, day.String())
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if err := s.store.AddHabitEntry(models.HabitEntry{HabitID: habitID, Day: day.String(), CreatedAt: s.clock.Now()}); err != nil {
			return false, err
		}
		s.log.Info("habit marked", "habit", habitID, "day", day)
		return true, nil
	case err != nil:
		return false, err
	}

	if err := s.store.DeleteHabitEntry(entry.ID); err != nil {
		return false, err
	}
	s.log.Info("habit unmarked", "habit", habitID, "day", day)
	return false, nil
}

// CreateHabit validates input, fills colour and icon from settings when
// empty, and stores the habit created now.
func (s *Service) CreateHabit(name, color, icon string) (models.Habit, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	if color == "" {
		color = settings.DefaultColor
	}
	if icon == "" {
		icon = settings.DefaultIcon
	}

	h := models.Habit{Name: strings.TrimSpace(name), Color: color, Icon: icon, CreatedAt: s.clock.Now()}
	existing, err := s.store.GetAllHabits(true)
	if err != nil {
		return models.Habit{}, err
	}
	result := validation.New().ValidateHabitName(h, existing)
	if err := result.Err(); err != nil {
		return models.Habit{}, err
	}

	created, err := s.store.AddHabit(h)
	if err != nil {
		return models.Habit{}, err
	}
	s.log.Info("habit created", "habit", created.ID, "name", created.Name)
	return created, nil
}

// UpdateHabit stores edits to an existing habit after checking the name
// is still unique.
func (s *Service) UpdateHabit(h models.Habit) error {
	h.Name = strings.TrimSpace(h.Name)
	existing, err := s.store.GetAllHabits(true)
	if err != nil {
		return err
	}
	result := validation.New().ValidateHabitName(h, existing)
	if err := result.Err(); err != nil {
		return err
	}
	if err := s.store.UpdateHabit(h); err != nil {
		return err
	}
	s.log.Info("habit updated", "habit", h.ID, "name", h.Name)
	return nil
}

// Move shifts a habit up (delta < 0) or down among active habits and
// persists the whole order. Moving past either end is a no-op.
func (s *Service) Move(habitID int64, delta int) error {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return err
	}
	from := -1
	for i, h := range habits {
		if h.ID == habitID {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("habit %d: %w", habitID, storage.ErrNotFound)
	}
	to := from + delta
	if to < 0 || to >= len(habits) || to == from {
		return nil
	}

	moved := habits[from]
	habits = append(habits[:from], habits[from+1:]...)
	habits = append(habits[:to], append([]models.Habit{moved}, habits[to:]...)...)

	orders := make([]models.HabitOrder, len(habits))
	for i, h := range habits {
		orders[i] = models.HabitOrder{ID: h.ID, Order: i}
	}
	return s.store.ReorderHabits(orders)
}
