package tracker

import (
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/models"
	"github.com/avinash6817/habit-ticker/internal/ratio"
	"github.com/avinash6817/habit-ticker/internal/streak"
)

// Cell is one day of a habit heatmap.
type Cell struct {
	Day  datekey.DateKey
	Done bool
	// Eligible is false for days before the habit existed.
	Eligible bool
}

// Card is everything a habit row displays.
type Card struct {
	Habit   models.Habit
	Streak  streak.Summary
	DoneOn  bool // completed on the selected day
	Heatmap []Cell
}

// BuildCard computes streaks anchored at today, completion on selected,
// and the trailing heatmap of window days ending at today.
func BuildCard(h HabitView, today, selected datekey.DateKey, window int) Card {
	days := datekey.LastN(today, window)
	cells := make([]Cell, len(days))
	for i, d := range days {
		cells[i] = Cell{
			Day:      d,
			Done:     h.Completions.Has(d),
			Eligible: !d.Before(h.Created),
		}
	}
	return Card{
		Habit:   h.Habit,
		Streak:  streak.Summarize(h.Completions, today),
		DoneOn:  h.Completions.Has(selected),
		Heatmap: cells,
	}
}

// Cards builds a card per habit, in snapshot order.
func (sn Snapshot) Cards(today, selected datekey.DateKey, window int) []Card {
	cards := make([]Card, len(sn.Habits))
	for i, h := range sn.Habits {
		cards[i] = BuildCard(h, today, selected, window)
	}
	return cards
}

// ScrollerDay is one cell of the month date scroller.
type ScrollerDay struct {
	Day      datekey.DateKey
	Ratio    ratio.Ratio
	IsToday  bool
	IsFuture bool
}

// ScrollerDays evaluates the completion ratio for every day of month's
// calendar month. Future days carry an empty ratio.
func ScrollerDays(habits []ratio.Habit, month, today datekey.DateKey) []ScrollerDay {
	days := datekey.MonthOf(month)
	out := make([]ScrollerDay, len(days))
	for i, dr := range ratio.Window(habits, days) {
		out[i] = ScrollerDay{
			Day:      dr.Day,
			Ratio:    dr.Ratio,
			IsToday:  dr.Day == today,
			IsFuture: dr.Day.After(today),
		}
		if out[i].IsFuture {
			out[i].Ratio = ratio.Ratio{}
		}
	}
	return out
}
