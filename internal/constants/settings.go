package constants

const (
	// Setting keys
	SettingTimezone     = "timezone"
	SettingHeatmapDays  = "heatmap_days"
	SettingDefaultColor = "default_color"
	SettingDefaultIcon  = "default_icon"

	// Default Settings Values
	DefaultTimezone = "Local" // Use system local timezone by default
	DefaultColor    = "green"
	DefaultIcon     = "flame"
)
