package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	want := filepath.Join(configDir, "logs", "habitticker.log")
	if Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("dropped below warn level")
	Warn("habit toggle refused", "habit", 3, "day", "2024-01-01")

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "habit toggle refused") {
		t.Errorf("log file missing warning, got %q", data)
	}
	if strings.Contains(string(data), "dropped below warn level") {
		t.Error("debug record written in normal mode")
	}
}

func TestInitDebugMode(t *testing.T) {
	var stderr bytes.Buffer
	err := Init(Config{
		Debug:     true,
		ConfigDir: t.TempDir(),
		Stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	Debug("loading snapshot", "habits", 2)
	if !strings.Contains(stderr.String(), "loading snapshot") {
		t.Errorf("debug record not copied to stderr: %q", stderr.String())
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
	With("component", "tracker").Info("discarded")
}
