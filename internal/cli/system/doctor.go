package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/logger"
	"github.com/avinash6817/habit-ticker/internal/utils"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database cannot be loaded.
	needsDB bool
	// warn checks report problems without failing the run.
	warn bool
	run  func(*cli.Context) error
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Clock/timezone", needsDB: true, run: checkClockTimezone},
	{name: "Habit entries", needsDB: true, run: checkHabitEntries},
	{name: "Tasks", needsDB: true, warn: true, run: checkTasks},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	dbReachable := true
	for i, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			logger.Warn("doctor check failed", "check", c.name, "error", err)
			failed++
			if i == 0 {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if failed > 0 {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("%d health check(s) failed", failed)
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	_, err := ctx.Store.GetSettings()
	return err
}

func migrator(ctx *cli.Context) (cli.Migrator, error) {
	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return nil, errors.New("storage does not expose its schema version")
	}
	return m, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, err := migrator(ctx)
	if err != nil {
		return err
	}
	status, err := m.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if status.Current > status.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", status.Current, status.Latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, err := migrator(ctx)
	if err != nil {
		return err
	}
	status, err := m.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if !status.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'habitticker migrate')", status.Current, status.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	result := validation.New().ValidateSettings(settings)
	return result.Err()
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	_, err = utils.LocationFromSettings(settings)
	return err
}

// checkHabitEntries catches completions the tracker would refuse to load:
// malformed day keys and days before the habit was created.
func checkHabitEntries(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	loc, err := utils.LocationFromSettings(settings)
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	entries, err := ctx.Store.GetAllHabitEntries()
	if err != nil {
		return fmt.Errorf("failed to get habit entries: %w", err)
	}

	result := validation.New().ValidateEntries(habits, entries, loc)
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}
	return nil
}

func checkTasks(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	v := validation.New()
	bad := 0
	for _, t := range tasks {
		result := v.ValidateTask(t)
		if result.HasConflicts() {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d tasks have invalid fields; fix them with 'habitticker task edit'", bad, len(tasks))
	}
	return nil
}
