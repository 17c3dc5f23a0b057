package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName             = "habitticker"
	DefaultKeyringUser  = "database-connection"
	DefaultConfigPath   = "~/.config/habitticker/habitticker.db"
	DefaultSettingsFile = "~/.config/habitticker/config.yaml"
	EnvPrefix           = "HABITTICKER"
	Version             = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ReminderTimeFormat is the 12-hour clock used for task reminders (e.g. "09:00 AM")
	ReminderTimeFormat = "03:04 PM"

	// Habit constraints
	MaxHabitNameLen     = 64
	MaxTaskDescription  = 120
	DefaultHeatmapDays  = 100
	MinHeatmapDays      = 7
	MaxHeatmapDays      = 366
	DefaultReminderTime = "09:00 AM"

	// Task priorities
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	// Task categories
	CategoryPersonal = "personal"
	CategoryWork     = "work"
	CategoryStudy    = "study"
	CategoryHealth   = "health"
)

// Session States
const (
	StateHabits SessionState = iota
	StateSchedule
	StateArchive
	StateAddHabit
	StateEditHabit
	StateAddTask
	StateConfirmDelete
)

// Priorities lists the accepted task priorities in display order.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Categories lists the accepted task categories in display order.
var Categories = []string{CategoryPersonal, CategoryWork, CategoryStudy, CategoryHealth}
