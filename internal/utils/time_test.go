package utils

import (
	"testing"
	"time"

	"github.com/avinash6817/habit-ticker/internal/models"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestLocationFromSettings(t *testing.T) {
	loc, err := LocationFromSettings(models.Settings{Timezone: "UTC"})
	if err != nil || loc != time.UTC {
		t.Errorf("LocationFromSettings(UTC) = %v, %v", loc, err)
	}
	if _, err := LocationFromSettings(models.Settings{Timezone: "Mars/Olympus"}); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestParseReminderTime(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "09:00 AM", want: 9 * 60},
		{input: "12:00 AM", want: 0},
		{input: "12:30 PM", want: 12*60 + 30},
		{input: "11:59 PM", want: 23*60 + 59},
		{input: "9:15 am", want: 9*60 + 15},
		{input: " 07:45 pm ", want: 19*60 + 45},
		{input: "13:00 PM", wantErr: true},
		{input: "09:00", wantErr: true},
		{input: "21:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReminderTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReminderTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseReminderTime(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatReminderTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{9 * 60, "09:00 AM"},
		{13*60 + 5, "01:05 PM"},
		{24*60 + 30, "12:30 AM"},
	}
	for _, tt := range tests {
		if got := FormatReminderTime(tt.minutes); got != tt.want {
			t.Errorf("FormatReminderTime(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}

	got, err := NormalizeReminderTime("7:05 pm")
	if err != nil || got != "07:05 PM" {
		t.Errorf("NormalizeReminderTime = %q, %v", got, err)
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		timezone string
		want     bool
	}{
		{"", true},
		{"Local", true},
		{"UTC", true},
		{"Not/AZone", false},
	}
	for _, tt := range tests {
		if got := ValidateTimezone(tt.timezone); got != tt.want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.timezone, got, tt.want)
		}
	}
}
