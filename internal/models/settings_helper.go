package models

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingHeatmapDays:
			if _, err := fmt.Sscanf(value, "%d", &settings.HeatmapDays); err != nil {
				return Settings{}, fmt.Errorf("parsing heatmap_days: %w", err)
			}
		case constants.SettingDefaultColor:
			settings.DefaultColor = value
		case constants.SettingDefaultIcon:
			settings.DefaultIcon = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:     settings.Timezone,
		constants.SettingHeatmapDays:  fmt.Sprintf("%d", settings.HeatmapDays),
		constants.SettingDefaultColor: settings.DefaultColor,
		constants.SettingDefaultIcon:  settings.DefaultIcon,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.HeatmapDays == 0 {
		settings.HeatmapDays = constants.DefaultHeatmapDays
	}
	if settings.DefaultColor == "" {
		settings.DefaultColor = constants.DefaultColor
	}
	if settings.DefaultIcon == "" {
		settings.DefaultIcon = constants.DefaultIcon
	}
}

// DefaultSettings returns a Settings value with every default applied.
func DefaultSettings() Settings {
	var s Settings
	ApplyDefaultSettings(&s)
	return s
}
