package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// LocationFromSettings resolves the timezone stored in settings.
func LocationFromSettings(settings models.Settings) (*time.Location, error) {
	loc, err := LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return loc, nil
}

// ParseReminderTime parses a 12-hour reminder such as "09:00 AM" and
// returns minutes from midnight. Lower-case meridiems and a missing
// leading zero are accepted.
func ParseReminderTime(s string) (int, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	if len(norm) == len(constants.ReminderTimeFormat)-1 {
		norm = "0" + norm
	}
	t, err := time.Parse(constants.ReminderTimeFormat, norm)
	if err != nil {
		return 0, fmt.Errorf("invalid reminder time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatReminderTime renders minutes from midnight as "hh:mm AM".
func FormatReminderTime(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(constants.ReminderTimeFormat)
}

// NormalizeReminderTime returns s in canonical "hh:mm AM" form.
func NormalizeReminderTime(s string) (string, error) {
	m, err := ParseReminderTime(s)
	if err != nil {
		return "", err
	}
	return FormatReminderTime(m), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
