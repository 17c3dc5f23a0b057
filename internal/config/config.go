// Package config loads file and environment configuration with viper.
//
// Values here sit between command-line flags and the settings persisted
// in the database: a flag overrides the environment, the environment
// overrides the file, and the file overrides stored settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/models"
)

// Config is the file/env configuration.
type Config struct {
	// Database is a SQLite path or PostgreSQL connection string.
	Database    string `mapstructure:"database" yaml:"database"`
	Timezone    string `mapstructure:"timezone" yaml:"timezone"`
	HeatmapDays int    `mapstructure:"heatmap_days" yaml:"heatmap_days"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
}

var keys = []string{"database", "timezone", "heatmap_days", "debug"}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return v
}

// Load reads path and the HABITTICKER_* environment. A missing file is
// not an error; the environment still applies.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("database", cfg.Database)
	v.Set("timezone", cfg.Timezone)
	v.Set("heatmap_days", cfg.HeatmapDays)
	v.Set("debug", cfg.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Apply overlays non-empty configuration onto persisted settings.
func (c *Config) Apply(settings models.Settings) models.Settings {
	if c == nil {
		return settings
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	if c.HeatmapDays > 0 {
		settings.HeatmapDays = c.HeatmapDays
	}
	return settings
}
