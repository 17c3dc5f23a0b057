package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avinash6817/habit-ticker/internal/cli"
	"github.com/avinash6817/habit-ticker/internal/logger"
	"github.com/avinash6817/habit-ticker/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, settings, err := ctx.Tracker()
	if err != nil {
		return err
	}

	logger.Debug("starting tui", "timezone", svc.Location().String(), "today", svc.Today().String())
	p := tea.NewProgram(tui.NewModel(ctx.Store, svc, settings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited: %w", err)
	}
	return nil
}
