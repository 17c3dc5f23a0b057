package tasks

import (
	"fmt"
	"strings"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/utils"
	"github.com/avinash6817/habit-ticker/internal/validation"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task ID or unique prefix."`
	Title       *string `help:"New title."`
	Description *string `short:"m" help:"New description."`
	Due         *string `short:"d" help:"New due day (YYYY-MM-DD)."`
	Reminder    *string `short:"r" help:"New reminder time, e.g. '06:30 PM'. Empty clears it."`
	Priority    *string `short:"p" help:"New priority (low|medium|high)."`
	Category    *string `short:"c" help:"New category (personal|work|study|health)."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := findTask(ctx.Store, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		task.Title = strings.TrimSpace(*c.Title)
	}
	if c.Description != nil {
		task.Description = strings.TrimSpace(*c.Description)
	}
	if c.Due != nil {
		task.DueDate = strings.TrimSpace(*c.Due)
	}
	if c.Reminder != nil {
		task.ReminderTime = strings.TrimSpace(*c.Reminder)
		if norm, err := utils.NormalizeReminderTime(task.ReminderTime); err == nil {
			task.ReminderTime = norm
		}
	}
	if c.Priority != nil {
		task.Priority = *c.Priority
	}
	if c.Category != nil {
		task.Category = *c.Category
	}

	result := validation.New().ValidateTask(task)
	if err := result.Err(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	ctx.Printf("Updated task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
