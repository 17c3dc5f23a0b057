package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/theme"
	"github.com/avinash6817/habit-ticker/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingField      ConflictType = "missing_field"
	ConflictTooLong           ConflictType = "too_long"
	ConflictUnknownColor      ConflictType = "unknown_color"
	ConflictUnknownIcon       ConflictType = "unknown_icon"
	ConflictInvalidDate       ConflictType = "invalid_date"
	ConflictInvalidTime       ConflictType = "invalid_time"
	ConflictInvalidPriority   ConflictType = "invalid_priority"
	ConflictInvalidCategory   ConflictType = "invalid_category"
	ConflictInvalidTimezone   ConflictType = "invalid_timezone"
	ConflictOutOfRange        ConflictType = "out_of_range"
	ConflictDuplicateName     ConflictType = "duplicate_name"
	ConflictMalformedEntryDay ConflictType = "malformed_entry_day"
	ConflictEntryBeforeHabit  ConflictType = "entry_before_habit"
)

// Conflict is one problem found in user input or stored data.
type Conflict struct {
	Type        ConflictType
	Field       string
	Description string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Err returns nil when there are no conflicts, otherwise an error
// listing each description.
func (vr *ValidationResult) Err() error {
	if !vr.HasConflicts() {
		return nil
	}
	msgs := make([]string, len(vr.Conflicts))
	for i, c := range vr.Conflicts {
		msgs[i] = c.Description
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t ConflictType, field, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        t,
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	})
}

// Validator validates user input and stored records.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a habit about to be created or edited. Empty
// colour and icon are allowed; the caller fills them from settings.
func (v *Validator) ValidateHabit(h models.Habit) ValidationResult {
	var result ValidationResult

	name := strings.TrimSpace(h.Name)
	switch {
	case name == "":
		result.add(ConflictMissingField, "name", "habit name is required")
	case utf8.RuneCountInString(name) > constants.MaxHabitNameLen:
		result.add(ConflictTooLong, "name", "habit name must be at most %d characters", constants.MaxHabitNameLen)
	}
	if h.Color != "" && !theme.IsColor(h.Color) {
		result.add(ConflictUnknownColor, "color", "unknown colour %q (want one of %s)", h.Color, strings.Join(theme.ColorNames(), ", "))
	}
	if h.Icon != "" && !theme.IsIcon(h.Icon) {
		result.add(ConflictUnknownIcon, "icon", "unknown icon %q (want one of %s)", h.Icon, strings.Join(theme.IconNames(), ", "))
	}
	return result
}

// ValidateHabitName additionally rejects a name already used by another
// habit, compared case-insensitively.
func (v *Validator) ValidateHabitName(h models.Habit, existing []models.Habit) ValidationResult {
	result := v.ValidateHabit(h)
	name := strings.TrimSpace(h.Name)
	for _, other := range existing {
		if other.ID != h.ID && strings.EqualFold(strings.TrimSpace(other.Name), name) {
			result.add(ConflictDuplicateName, "name", "a habit named %q already exists", other.Name)
			break
		}
	}
	return result
}

// ValidateTask checks a task about to be created or edited.
func (v *Validator) ValidateTask(t models.Task) ValidationResult {
	var result ValidationResult

	if strings.TrimSpace(t.Title) == "" {
		result.add(ConflictMissingField, "title", "task title is required")
	}
	if n := utf8.RuneCountInString(t.Description); n > constants.MaxTaskDescription {
		result.add(ConflictTooLong, "description", "description must be at most %d characters (got %d)", constants.MaxTaskDescription, n)
	}
	if _, err := datekey.Parse(t.DueDate); err != nil {
		result.add(ConflictInvalidDate, "due_date", "due date %q must be YYYY-MM-DD", t.DueDate)
	}
	if t.ReminderTime != "" {
		if _, err := utils.ParseReminderTime(t.ReminderTime); err != nil {
			result.add(ConflictInvalidTime, "reminder_time", "reminder time %q must look like 09:00 AM", t.ReminderTime)
		}
	}
	if !contains(constants.Priorities, t.Priority) {
		result.add(ConflictInvalidPriority, "priority", "priority %q must be one of %s", t.Priority, strings.Join(constants.Priorities, ", "))
	}
	if !contains(constants.Categories, t.Category) {
		result.add(ConflictInvalidCategory, "category", "category %q must be one of %s", t.Category, strings.Join(constants.Categories, ", "))
	}
	return result
}

// ValidateSettings checks persisted settings.
func (v *Validator) ValidateSettings(s models.Settings) ValidationResult {
	var result ValidationResult

	if !utils.ValidateTimezone(s.Timezone) {
		result.add(ConflictInvalidTimezone, "timezone", "unknown timezone %q", s.Timezone)
	}
	if s.HeatmapDays < constants.MinHeatmapDays || s.HeatmapDays > constants.MaxHeatmapDays {
		result.add(ConflictOutOfRange, "heatmap_days", "heatmap days must be between %d and %d (got %d)",
			constants.MinHeatmapDays, constants.MaxHeatmapDays, s.HeatmapDays)
	}
	if s.DefaultColor != "" && !theme.IsColor(s.DefaultColor) {
		result.add(ConflictUnknownColor, "default_color", "unknown colour %q", s.DefaultColor)
	}
	if s.DefaultIcon != "" && !theme.IsIcon(s.DefaultIcon) {
		result.add(ConflictUnknownIcon, "default_icon", "unknown icon %q", s.DefaultIcon)
	}
	return result
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
