package state

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/validation"
)

// UpdateValidationStatus checks stored completions against their habits
// and sets the warning shown above the habits view.
func (m *Model) UpdateValidationStatus() {
	habits, err := m.Store.GetAllHabits(true)
	if err != nil {
		m.ValidationWarning = "⚠ Validation unavailable"
		m.ValidationConflicts = nil
		return
	}
	entries, err := m.Store.GetAllHabitEntries()
	if err != nil {
		m.ValidationWarning = "⚠ Validation unavailable"
		m.ValidationConflicts = nil
		return
	}

	result := validation.New().ValidateEntries(habits, entries, m.Tracker.Location())
	m.ValidationConflicts = result.Conflicts
	if result.HasConflicts() {
		m.ValidationWarning = fmt.Sprintf("⚠ %d integrity warning(s), run 'doctor' for details", len(result.Conflicts))
	} else {
		m.ValidationWarning = ""
	}
}
