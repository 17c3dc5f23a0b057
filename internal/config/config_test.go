package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avinash6817/habit-ticker/internal/models"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", *cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "database: /data/habits.db\ntimezone: Europe/Berlin\nheatmap_days: 30\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{Database: "/data/habits.db", Timezone: "Europe/Berlin", HeatmapDays: 30}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}

	t.Setenv("HABITTICKER_TIMEZONE", "Asia/Tokyo")
	t.Setenv("HABITTICKER_DEBUG", "true")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() with env error = %v", err)
	}
	if cfg.Timezone != "Asia/Tokyo" || !cfg.Debug {
		t.Errorf("env did not override file: %+v", *cfg)
	}
	if cfg.Database != "/data/habits.db" {
		t.Errorf("file value lost: %+v", *cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timezone: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{Database: "/tmp/h.db", Timezone: "UTC", HeatmapDays: 60}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", *out, *in)
	}
}

func TestApply(t *testing.T) {
	stored := models.DefaultSettings()
	stored.Timezone = "UTC"

	got := (&Config{HeatmapDays: 30}).Apply(stored)
	if got.Timezone != "UTC" || got.HeatmapDays != 30 {
		t.Errorf("Apply() = %+v", got)
	}
	got = (&Config{Timezone: "Europe/Paris"}).Apply(stored)
	if got.Timezone != "Europe/Paris" || got.HeatmapDays != stored.HeatmapDays {
		t.Errorf("Apply() = %+v", got)
	}
	var nilCfg *Config
	if nilCfg.Apply(stored) != stored {
		t.Error("nil config should leave settings unchanged")
	}
}
