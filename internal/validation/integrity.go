package validation

import (
	"time"

	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
)

// ValidateEntries checks stored completion rows against their habits: each
// day must be a well-formed key and must not precede the habit's creation
// day in loc. Entries for unknown habits are ignored, as are entries whose
// habit has an out-of-range creation time (reported once on the habit).
func (v *Validator) ValidateEntries(habits []models.Habit, entries []models.HabitEntry, loc *time.Location) ValidationResult {
	var result ValidationResult

	created := make(map[int64]datekey.DateKey, len(habits))
	names := make(map[int64]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
		start, err := datekey.NormalizeChecked(h.CreatedAt, loc)
		if err != nil {
			result.add(ConflictInvalidDate, "created_at", "habit %q has an unusable creation time %s", h.Name, h.CreatedAt.Format(time.RFC3339))
			continue
		}
		created[h.ID] = start
	}

	for _, e := range entries {
		day, err := datekey.Parse(e.Day)
		if err != nil {
			result.add(ConflictMalformedEntryDay, "day", "entry %s has malformed day %q", e.ID, e.Day)
			continue
		}
		start, ok := created[e.HabitID]
		if !ok {
			continue
		}
		if day.Before(start) {
			result.add(ConflictEntryBeforeHabit, "day", "habit %q has a completion on %s before it was created on %s",
				names[e.HabitID], day, start)
		}
	}
	return result
}
