package tasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/storage"
)

// findTask resolves a full task ID or an unambiguous prefix of one.
func findTask(store storage.Provider, ref string) (models.Task, error) {
	task, err := store.GetTask(ref)
	if err == nil || !errors.Is(err, storage.ErrNotFound) {
		return task, err
	}

	all, err := store.GetAllTasks()
	if err != nil {
		return models.Task{}, err
	}
	var matches []models.Task
	for _, t := range all {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("failed to find task with ID %s: %w", ref, storage.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("task ID prefix %q matches %d tasks", ref, len(matches))
	}
}
