package settings

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone     *string `help:"IANA timezone used to decide what 'today' is (or 'Local')."`
	HeatmapDays  *int    `help:"Trailing days shown in habit heatmaps (7-366)."`
	DefaultColor *string `help:"Colour given to new habits."`
	DefaultIcon  *string `help:"Icon given to new habits."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		effective := ctx.Config.Apply(settings)
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:       %s%s\n", effective.Timezone, overridden(settings.Timezone != effective.Timezone))
		ctx.Printf("  Heatmap Days:   %d%s\n", effective.HeatmapDays, overridden(settings.HeatmapDays != effective.HeatmapDays))
		ctx.Printf("  Default Colour: %s\n", settings.DefaultColor)
		ctx.Printf("  Default Icon:   %s\n", settings.DefaultIcon)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.HeatmapDays != nil {
		settings.HeatmapDays = *c.HeatmapDays
		updated = true
	}
	if c.DefaultColor != nil {
		settings.DefaultColor = *c.DefaultColor
		updated = true
	}
	if c.DefaultIcon != nil {
		settings.DefaultIcon = *c.DefaultIcon
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	result := validation.New().ValidateSettings(settings)
	if err := result.Err(); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

func overridden(yes bool) string {
	if yes {
		return " (from config file or environment)"
	}
	return ""
}
