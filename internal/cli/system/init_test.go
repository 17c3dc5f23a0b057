package system

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/config"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)

	ctx := &cli.Context{
		Store:  store,
		Config: &config.Config{},
		Out:    &bytes.Buffer{},
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get initial settings: %v", err)
	}
	settings.HeatmapDays = 30
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save modified settings: %v", err)
	}
	if _, err := ctx.Store.AddHabit(models.Habit{Name: "Read", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init with force failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not recreated after force")
	}

	fresh, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings after force: %v", err)
	}
	if fresh.HeatmapDays != 100 {
		t.Errorf("expected default heatmap days 100, got %d", fresh.HeatmapDays)
	}
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil || len(habits) != 0 {
		t.Errorf("habits survived force reset: %v, %v", habits, err)
	}
}

func TestInitCmd_ForceWithNonExistentDatabase(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("database file should not exist initially")
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init with force on non-existent database failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created")
	}
}

func TestInitCmd_ForceRejectsSameSource(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Error("expected error when source equals destination")
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.db")
	src := sqlite.NewStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatalf("failed to init source: %v", err)
	}
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	// An extra habit first so source and destination IDs differ.
	filler, _ := src.AddHabit(models.Habit{Name: "Filler", CreatedAt: created})
	read, err := src.AddHabit(models.Habit{Name: "Read", Color: "blue", Icon: "book", CreatedAt: created})
	if err != nil {
		t.Fatal(err)
	}
	_ = src.DeleteHabit(filler.ID)
	if err := src.AddHabitEntry(models.HabitEntry{HabitID: read.ID, Day: "2024-03-02"}); err != nil {
		t.Fatal(err)
	}
	if err := src.AddTask(models.Task{Title: "Dentist", DueDate: "2024-03-05", Priority: "high", Category: "health"}); err != nil {
		t.Fatal(err)
	}
	src.Close()

	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{Source: srcPath}).Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	habit, err := ctx.Store.GetHabitByName("Read")
	if err != nil {
		t.Fatalf("habit not copied: %v", err)
	}
	if habit.Color != "blue" || !habit.CreatedAt.Equal(created) {
		t.Errorf("copied habit = %+v", habit)
	}
	if _, err := ctx.Store.GetHabitEntry(habit.ID, "2024-03-02"); err != nil {
		t.Errorf("entry not remapped to new habit ID: %v", err)
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil || len(tasks) != 1 || tasks[0].Title != "Dentist" {
		t.Errorf("tasks = %+v, %v", tasks, err)
	}
}
