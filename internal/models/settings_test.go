package models

import (
	"testing"

	"github.com/avinash6817/habit-ticker/internal/constants"
)

func TestSettingsMapRoundTrip(t *testing.T) {
	original := Settings{
		Timezone:     "Europe/London",
		HeatmapDays:  30,
		DefaultColor: "blue",
		DefaultIcon:  "book",
	}

	got, err := MapToSettings(SettingsToMap(original))
	if err != nil {
		t.Fatalf("MapToSettings: %v", err)
	}
	if got != original {
		t.Errorf("round trip = %+v, want %+v", got, original)
	}
}

func TestMapToSettingsInvalidNumber(t *testing.T) {
	_, err := MapToSettings(map[string]string{constants.SettingHeatmapDays: "many"})
	if err == nil {
		t.Error("expected error for non-numeric heatmap_days")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{DefaultColor: "pink"}
	ApplyDefaultSettings(&s)

	if s.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q", s.Timezone)
	}
	if s.HeatmapDays != constants.DefaultHeatmapDays {
		t.Errorf("HeatmapDays = %d", s.HeatmapDays)
	}
	if s.DefaultColor != "pink" {
		t.Errorf("DefaultColor overwritten: %q", s.DefaultColor)
	}
	if s.DefaultIcon != constants.DefaultIcon {
		t.Errorf("DefaultIcon = %q", s.DefaultIcon)
	}
}
