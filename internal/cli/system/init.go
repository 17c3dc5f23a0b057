package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
	"github.com/avinash6817/habit-ticker/internal/storage/postgres"
	"github.com/avinash6817/habit-ticker/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting an existing SQLite database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized habitticker storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx, c.Source); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		ctx.Println("Copy completed successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errors.New("--force is only supported for SQLite databases")
	}

	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absDB, err := filepath.Abs(dbPath)
		if err == nil {
			dbPath = absDB
		}
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if !storage.IsPostgresDSN(source) {
		return sqlite.NewStore(source), nil
	}
	if valid, err := postgres.ValidateConnString(source); !valid {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, errors.New("PostgreSQL source connection string contains embedded credentials; use the keyring, environment variables or .pgpass instead")
		}
		return nil, err
	}
	return postgres.New(source), nil
}

// copyData copies settings, habits (in display order), entries and tasks.
// Habits get new IDs in the destination, so entries are remapped.
func (c *InitCmd) copyData(ctx *cli.Context, source string) error {
	src, err := openSource(source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	ctx.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Copying habits...")
	habits, err := src.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	ids := make(map[int64]int64, len(habits))
	for _, h := range habits {
		created, err := ctx.Store.AddHabit(models.Habit{
			Name:       h.Name,
			Color:      h.Color,
			Icon:       h.Icon,
			CreatedAt:  h.CreatedAt,
			ArchivedAt: h.ArchivedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to add habit %q: %w", h.Name, err)
		}
		ids[h.ID] = created.ID
	}
	ctx.Printf("    Copied %d habits\n", len(habits))

	ctx.Println("  Copying habit entries...")
	entries, err := src.GetAllHabitEntries()
	if err != nil {
		return fmt.Errorf("failed to get habit entries from source: %w", err)
	}
	copied := 0
	for _, e := range entries {
		id, ok := ids[e.HabitID]
		if !ok {
			continue
		}
		e.HabitID = id
		if err := ctx.Store.AddHabitEntry(e); err != nil {
			return fmt.Errorf("failed to add habit entry %s: %w", e.ID, err)
		}
		copied++
	}
	ctx.Printf("    Copied %d habit entries\n", copied)

	ctx.Println("  Copying tasks...")
	tasks, err := src.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks from source: %w", err)
	}
	for _, t := range tasks {
		if err := ctx.Store.AddTask(t); err != nil {
			return fmt.Errorf("failed to add task %s: %w", t.ID, err)
		}
	}
	ctx.Printf("    Copied %d tasks\n", len(tasks))
	return nil
}
