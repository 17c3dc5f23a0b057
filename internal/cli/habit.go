package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/theme"
	"github.com/avinash6817/habit-ticker/internal/tracker"
	"github.com/avinash6817/habit-ticker/internal/tui/components/habits"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits with today's status and streaks."`
	Edit    HabitEditCmd    `cmd:"" help:"Rename or restyle a habit."`
	Mark    HabitMarkCmd    `cmd:"" help:"Toggle a habit's completion for a day."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore an archived habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and its history permanently."`
	Reorder HabitReorderCmd `cmd:"" help:"Move a habit up or down the list."`
	Stats   HabitStatsCmd   `cmd:"" help:"Show streaks for a habit."`
	Heatmap HabitHeatmapCmd `cmd:"" help:"Show completion heatmaps."`
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Color string `short:"c" help:"Colour (green|blue|purple|red|yellow|pink). Defaults to the default_color setting."`
	Icon  string `short:"i" help:"Icon name. Defaults to the default_icon setting."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := svc.CreateHabit(c.Name, c.Color, c.Icon)
	if err != nil {
		return err
	}

	ctx.Printf("Added habit: %s %s (ID: %d)\n", theme.IconFor(habit.Icon).Glyph, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, settings, err := ctx.Tracker()
	if err != nil {
		return err
	}

	sn, err := svc.Snapshot(c.Archived)
	if err != nil {
		return err
	}
	if len(sn.Habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	today := svc.Today()
	for _, card := range sn.Cards(today, today, settings.HeatmapDays) {
		mark := "○"
		if card.DoneOn {
			mark = "✓"
		}
		status := ""
		if card.Habit.IsArchived() {
			status = " [ARCHIVED]"
		}
		ctx.Printf("%3d  %s %s %s%s  (%s)\n",
			card.Habit.ID, mark, theme.IconFor(card.Habit.Icon).Glyph,
			theme.Style(card.Habit.Color).Render(card.Habit.Name), status,
			habits.StreakLine(card))
	}
	return nil
}

type HabitEditCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Name  string `help:"New name."`
	Color string `short:"c" help:"New colour."`
	Icon  string `short:"i" help:"New icon."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if c.Name == "" && c.Color == "" && c.Icon == "" {
		return errors.New("nothing to change: pass --name, --color or --icon")
	}
	if c.Name != "" {
		habit.Name = strings.TrimSpace(c.Name)
	}
	if c.Color != "" {
		habit.Color = c.Color
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}

	if err := svc.UpdateHabit(habit); err != nil {
		return err
	}
	ctx.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitMarkCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `short:"d" help:"Day as YYYY-MM-DD, 'today' or 'yesterday' (default: today)."`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	day, err := ParseDay(c.Date, svc.Today())
	if err != nil {
		return err
	}

	done, err := svc.Toggle(habit.ID, day)
	switch {
	case errors.Is(err, tracker.ErrFutureDay):
		return fmt.Errorf("cannot mark %q on %s: that day has not happened yet", habit.Name, day)
	case errors.Is(err, tracker.ErrBeforeCreation):
		return fmt.Errorf("cannot mark %q on %s: the habit did not exist yet", habit.Name, day)
	case err != nil:
		return err
	}

	if done {
		ctx.Printf("Marked habit %q for %s\n", habit.Name, day)
	} else {
		ctx.Printf("Unmarked habit %q for %s\n", habit.Name, day)
	}
	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit name or ID to archive."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}

	ctx.Printf("Archived habit: %s\n", habit.Name)
	ctx.Printf("(Use '%s habit restore %q' to bring it back)\n", constants.AppName, habit.Name)
	return nil
}

type HabitRestoreCmd struct {
	Habit string `arg:"" help:"Habit name or ID to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if !habit.IsArchived() {
		return fmt.Errorf("habit %q is not archived", habit.Name)
	}
	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	ctx.Printf("Restored habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	ctx.Printf("Deleted habit: %s\n", habit.Name)
	ctx.Println("(All completions were removed. Use 'habit archive' to keep history.)")
	return nil
}

type HabitReorderCmd struct {
	Habit string `arg:"" help:"Habit name or ID to move."`
	By    int    `help:"Positions to move; negative moves up." default:"-1"`
}

func (c *HabitReorderCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, _, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if err := svc.Move(habit.ID, c.By); err != nil {
		return err
	}

	active, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	for i, h := range active {
		ctx.Printf("%2d. %s\n", i+1, h.Name)
	}
	return nil
}

type HabitStatsCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, settings, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	card, err := svc.Card(habit.ID, settings.HeatmapDays)
	if err != nil {
		return err
	}

	eligible, done := 0, 0
	for _, cell := range card.Heatmap {
		if cell.Eligible {
			eligible++
			if cell.Done {
				done++
			}
		}
	}

	ctx.Printf("%s %s\n", theme.IconFor(habit.Icon).Glyph, theme.Style(habit.Color).Render(habit.Name))
	ctx.Printf("  Current streak: %d\n", card.Streak.Current)
	ctx.Printf("  Best streak:    %d\n", card.Streak.Best)
	ctx.Printf("  Total:          %d\n", card.Streak.Total)
	if eligible > 0 {
		ctx.Printf("  Last %d days:   %d/%d (%.0f%%)\n", len(card.Heatmap), done, eligible, 100*float64(done)/float64(eligible))
	}
	return nil
}

type HabitHeatmapCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name or ID (default: all active habits)."`
	Days  int    `help:"Number of trailing days (default: heatmap_days setting)."`
	Width int    `help:"Cells per row." default:"20"`
}

func (c *HabitHeatmapCmd) Validate() error {
	if c.Days != 0 && (c.Days < constants.MinHeatmapDays || c.Days > constants.MaxHeatmapDays) {
		return fmt.Errorf("--days must be between %d and %d", constants.MinHeatmapDays, constants.MaxHeatmapDays)
	}
	return nil
}

func (c *HabitHeatmapCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	svc, settings, err := ctx.Tracker()
	if err != nil {
		return err
	}
	days := c.Days
	if days == 0 {
		days = settings.HeatmapDays
	}

	if c.Habit != "" {
		habit, err := FindHabit(ctx.Store, c.Habit)
		if err != nil {
			return err
		}
		card, err := svc.Card(habit.ID, days)
		if err != nil {
			return err
		}
		c.render(ctx, card)
		return nil
	}

	sn, err := svc.Snapshot(false)
	if err != nil {
		return err
	}
	today := svc.Today()
	for i, card := range sn.Cards(today, today, days) {
		if i > 0 {
			ctx.Println()
		}
		c.render(ctx, card)
	}
	return nil
}

func (c *HabitHeatmapCmd) render(ctx *Context, card tracker.Card) {
	ctx.Printf("%s %s  %s\n", theme.IconFor(card.Habit.Icon).Glyph,
		theme.Style(card.Habit.Color).Render(card.Habit.Name), habits.StreakLine(card))
	ctx.Println(habits.Heatmap(card.Heatmap, card.Habit.Color, c.Width))
}
