package tasks

import (
	"fmt"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/scheduler"
)

// TaskAgendaCmd prints tasks grouped by due day in reminder order.
type TaskAgendaCmd struct {
	All     bool `help:"Include days before today."`
	ShowIDs bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskAgendaCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	today := svc.Today().String()
	shown := 0
	for _, day := range scheduler.Agenda(tasks) {
		if !c.All && day.Date < today {
			continue
		}
		if shown > 0 {
			ctx.Println()
		}
		shown++
		label := day.Date
		if day.Date == today {
			label += " (today)"
		}
		ctx.Printf("%s  %d/%d done\n", label, day.Progress.Completed, day.Progress.Eligible)
		for _, task := range day.Tasks {
			ctx.Println(formatTask(task, c.ShowIDs))
		}
	}
	if shown == 0 {
		ctx.Println("Nothing scheduled.")
	}
	return nil
}
