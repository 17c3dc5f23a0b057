package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/cli/settings"
	"github.com/avinash6817/habit-ticker/internal/cli/system"
	"github.com/avinash6817/habit-ticker/internal/cli/tasks"
	"github.com/avinash6817/habit-ticker/internal/config"
	"github.com/avinash6817/habit-ticker/internal/constants"
	apperrors "github.com/avinash6817/habit-ticker/internal/errors"
	"github.com/avinash6817/habit-ticker/internal/keyring"
	"github.com/avinash6817/habit-ticker/internal/logger"
	"github.com/avinash6817/habit-ticker/internal/storage"
	"github.com/avinash6817/habit-ticker/internal/storage/postgres"
	"github.com/avinash6817/habit-ticker/internal/storage/sqlite"
	"github.com/avinash6817/habit-ticker/internal/utils"
)

var CLI struct {
	Version    kong.VersionFlag
	Config     string `help:"SQLite path or PostgreSQL connection string. Credentials must NOT be embedded; use the keyring, HABITTICKER_DATABASE or .pgpass." type:"string"`
	ConfigFile string `help:"Path of the YAML configuration file." default:"${settings_file}" type:"path"`
	Debug      bool   `help:"Log debug output to stderr as well as the log file."`

	Init     system.InitCmd       `cmd:"" help:"Initialize habitticker storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change application settings."`
	Habit    cli.HabitCmd         `cmd:"" help:"Manage habits and mark completions."`
	Day      cli.DayCmd           `cmd:"" help:"Show daily completion ratios for a month."`
	Task     struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Mark a task done."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		Agenda tasks.TaskAgendaCmd `cmd:"" help:"Show tasks grouped by due day."`
	} `cmd:"" help:"Manage one-off tasks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, heatmaps and a daily schedule"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       constants.Version,
			"settings_file": constants.DefaultSettingsFile,
		},
	)

	settingsPath := utils.ExpandHome(CLI.ConfigFile)
	cfg, err := config.Load(settingsPath)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		ConfigDir: filepath.Dir(settingsPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	explicit := CLI.Config
	if explicit == "" {
		explicit = cfg.Database
	}
	target, fromKeyring := keyring.ResolveTarget(explicit, constants.DefaultConfigPath)

	store, err := openStore(target, fromKeyring)
	if err != nil {
		apperrors.Fatal(err)
	}
	logger.Debug("store selected", "target", keyring.MaskPassword(target), "keyring", fromKeyring)

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("failed to close store", "error", closeErr)
	}
	apperrors.Fatal(err)
}

// openStore picks the backend for target. A PostgreSQL string read from
// the keyring may carry a password; one given any other way may not.
func openStore(target string, fromKeyring bool) (storage.Provider, error) {
	if !storage.IsPostgresDSN(target) {
		return sqlite.NewStore(utils.ExpandHome(target)), nil
	}
	if !fromKeyring {
		if _, err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, apperrors.WithHint(err,
					fmt.Sprintf("Store it with '%s keyring set', or drop the password and use .pgpass.", constants.AppName))
			}
			return nil, err
		}
	}
	return postgres.New(target), nil
}
