package system

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/cli"
)

type MigrateCmd struct {
	Status bool `help:"Only report the schema version and pending migrations."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return fmt.Errorf("storage at %s does not support migrations", ctx.Store.GetConfigPath())
	}

	if c.Status {
		status, err := m.MigrationStatus()
		if err != nil {
			return err
		}
		ctx.Printf("Schema version: %d (latest %d)\n", status.Current, status.Latest)
		for _, p := range status.Pending {
			ctx.Printf("  pending: %03d %s\n", p.Version, p.Name)
		}
		return nil
	}

	count, err := m.Migrate(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
