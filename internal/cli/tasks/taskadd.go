package tasks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/utils"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"m" help:"Longer description (at most 120 characters)."`
	Due         string `short:"d" help:"Due day as YYYY-MM-DD, 'today' or 'yesterday' (default: today)."`
	Reminder    string `short:"r" help:"Reminder time, e.g. '09:00 AM'." default:"09:00 AM"`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium" enum:"low,medium,high"`
	Category    string `short:"c" help:"Category (personal|work|study|health)." default:"personal" enum:"personal,work,study,health"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	due, err := cli.ParseDay(c.Due, svc.Today())
	if err != nil {
		return err
	}

	task := models.Task{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(c.Title),
		Description:  strings.TrimSpace(c.Description),
		DueDate:      due.String(),
		ReminderTime: c.Reminder,
		Priority:     c.Priority,
		Category:     c.Category,
	}
	if task.ReminderTime != "" {
		if norm, err := utils.NormalizeReminderTime(task.ReminderTime); err == nil {
			task.ReminderTime = norm
		}
	}

	result := validation.New().ValidateTask(task)
	if err := result.Err(); err != nil {
		return err
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	ctx.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	ctx.Printf("  Due %s at %s [%s, %s]\n", task.DueDate, reminderOrDash(task.ReminderTime), task.Priority, task.Category)
	return nil
}

func reminderOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
