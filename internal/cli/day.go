package cli

import (
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/tui/components/habits"
)

// DayCmd prints the month scroller: each day's completion ratio over the
// habits that existed on it.
type DayCmd struct {
	Month string `help:"Month as YYYY-MM (default: current month)."`
	Grid  bool   `help:"Render a compact calendar instead of one line per day."`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	today := svc.Today()
	month := today
	if c.Month != "" {
		if month, err = datekey.ParseMonth(c.Month); err != nil {
			return err
		}
	}

	days, err := svc.Scroller(month)
	if err != nil {
		return err
	}

	if c.Grid {
		ctx.Println(habits.Scroller(days, today.String()))
		return nil
	}
	for _, d := range days {
		if d.IsFuture {
			continue
		}
		marker := " "
		if d.IsToday {
			marker = "*"
		}
		ctx.Printf("%s%s  %s  %d/%d\n", marker, d.Day, habits.RatioGlyph(d.Ratio), d.Ratio.Completed, d.Ratio.Eligible)
	}
	return nil
}
