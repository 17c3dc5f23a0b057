package tasks

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/models"
)

type TaskListCmd struct {
	Pending bool   `help:"Show only tasks not yet done."`
	Day     string `short:"d" help:"Only tasks due on this day (YYYY-MM-DD, 'today' or 'yesterday')."`
	ShowIDs bool   `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var tasks []models.Task
	var err error
	if c.Day != "" {
		svc, _, terr := ctx.Tracker()
		if terr != nil {
			return terr
		}
		day, perr := cli.ParseDay(c.Day, svc.Today())
		if perr != nil {
			return perr
		}
		tasks, err = ctx.Store.GetTasksForDay(day.String())
	} else {
		tasks, err = ctx.Store.GetAllTasks()
	}
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	shown := 0
	for _, task := range tasks {
		if c.Pending && task.Completed {
			continue
		}
		if shown == 0 {
			ctx.Println("Tasks:")
		}
		shown++
		ctx.Println(formatTask(task, c.ShowIDs))
		if task.Description != "" {
			ctx.Printf("      %s\n", task.Description)
		}
	}
	if shown == 0 {
		ctx.Println("No tasks found")
	}
	return nil
}

func formatTask(task models.Task, showID bool) string {
	status := " "
	if task.Completed {
		status = "x"
	}
	idStr := ""
	if showID {
		idStr = fmt.Sprintf(" (ID: %s)", task.ID)
	}
	return fmt.Sprintf("  [%s] %s %s %s%s (%s, %s)",
		status, task.DueDate, reminderOrDash(task.ReminderTime), task.Title, idStr, task.Priority, task.Category)
}
