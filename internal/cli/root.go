package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avinash6817/habit-ticker/internal/config"
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/migration"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
	"github.com/avinash6817/habit-ticker/internal/tracker"
	"github.com/avinash6817/habit-ticker/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
	// Clock defaults to the system clock; tests pin it.
	Clock datekey.Clock
	// Out receives command output. Nil means stdout.
	Out io.Writer
}

// Migrator is implemented by stores that carry the embedded migration runner.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	MigrationStatus() (migration.Status, error)
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Settings returns the persisted settings with file and environment
// configuration laid over them.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return c.Config.Apply(settings), nil
}

// Tracker builds a tracker service in the configured timezone.
func (c *Context) Tracker() (*tracker.Service, models.Settings, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, models.Settings{}, err
	}
	loc, err := utils.LocationFromSettings(settings)
	if err != nil {
		return nil, models.Settings{}, err
	}
	return tracker.New(c.Store, c.Clock, loc), settings, nil
}

// FindHabit resolves ref as a numeric ID first, then as a name compared
// case-insensitively.
func FindHabit(store storage.Provider, ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		h, err := store.GetHabit(id)
		if err == nil || !errors.Is(err, storage.ErrNotFound) {
			return h, err
		}
	}
	h, err := store.GetHabitByName(ref)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, fmt.Errorf("habit %q not found: %w", ref, err)
	}
	return h, err
}

// ParseDay accepts YYYY-MM-DD, "today" or "yesterday". Empty means today.
func ParseDay(s string, today datekey.DateKey) (datekey.DateKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.Prev(), nil
	}
	return datekey.Parse(strings.TrimSpace(s))
}
