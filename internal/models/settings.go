package models

// Settings represents application-wide settings
type Settings struct {
	Timezone     string `json:"timezone"`      // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	HeatmapDays  int    `json:"heatmap_days"`  // number of trailing days shown in a habit heatmap
	DefaultColor string `json:"default_color"` // palette colour used when a habit is added without one
	DefaultIcon  string `json:"default_icon"`  // icon used when a habit is added without one
}
