// Package scheduler arranges one-off tasks into a day-by-day agenda.
package scheduler

import (
	"sort"

	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/ratio"
	"github.com/avinash6817/habit-ticker/internal/utils"
)

// Day is every task due on one day, in reminder order.
type Day struct {
	Date     string
	Tasks    []models.Task
	Progress ratio.Ratio
}

// Agenda groups tasks by due date, ascending. Within a day tasks are
// ordered by reminder time; tasks without a reminder come last, then by
// title.
func Agenda(tasks []models.Task) []Day {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		ma, mb := reminderMinutes(a), reminderMinutes(b)
		if ma != mb {
			return ma < mb
		}
		return a.Title < b.Title
	})

	var days []Day
	for _, t := range sorted {
		if n := len(days); n == 0 || days[n-1].Date != t.DueDate {
			days = append(days, Day{Date: t.DueDate})
		}
		days[len(days)-1].Tasks = append(days[len(days)-1].Tasks, t)
	}
	for i := range days {
		days[i].Progress = Progress(days[i].Tasks)
	}
	return days
}

// Progress is completed out of all tasks.
func Progress(tasks []models.Task) ratio.Ratio {
	r := ratio.Ratio{Eligible: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			r.Completed++
		}
	}
	return r
}

// noReminder sorts after every valid time of day.
const noReminder = 24 * 60

func reminderMinutes(t models.Task) int {
	if t.ReminderTime == "" {
		return noReminder
	}
	m, err := utils.ParseReminderTime(t.ReminderTime)
	if err != nil {
		return noReminder
	}
	return m
}
