package tasks

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/cli"
)

type TaskDoneCmd struct {
	ID   string `arg:"" help:"Task ID or unique prefix."`
	Undo bool   `help:"Mark the task as not done."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := findTask(ctx.Store, c.ID)
	if err != nil {
		return err
	}
	task.Completed = !c.Undo
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if task.Completed {
		ctx.Printf("Completed task: %s\n", task.Title)
	} else {
		ctx.Printf("Reopened task: %s\n", task.Title)
	}
	return nil
}
