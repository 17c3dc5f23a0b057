package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avinash6817/habit-ticker/internal/ratio"
	"github.com/avinash6817/habit-ticker/internal/theme"
	"github.com/avinash6817/habit-ticker/internal/tracker"
)

var (
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// RatioGlyph draws a ratio as a progress ring.
func RatioGlyph(r ratio.Ratio) string {
	switch v := r.Value(); {
	case r.Eligible == 0:
		return "·"
	case r.Full():
		return "●"
	case v >= 0.75:
		return "◕"
	case v >= 0.5:
		return "◑"
	case v > 0:
		return "◔"
	default:
		return "○"
	}
}

// Heatmap renders cells in rows of width, oldest first. Completed days are
// filled in the habit colour; days before the habit existed are blank.
func Heatmap(cells []tracker.Cell, color string, width int) string {
	if width <= 0 {
		width = 20
	}
	done := theme.Style(color)

	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		switch {
		case !c.Eligible:
			b.WriteString(dimStyle.Render("·"))
		case c.Done:
			b.WriteString(done.Render("■"))
		default:
			b.WriteString(emptyStyle.Render("□"))
		}
	}
	return b.String()
}

// Scroller renders one line per week of the month: the day number with
// its ratio glyph. The selected day is underlined and today highlighted.
func Scroller(days []tracker.ScrollerDay, selected string) string {
	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			if i%7 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		glyph := RatioGlyph(d.Ratio)
		if d.IsFuture {
			glyph = " "
		}
		cell := fmt.Sprintf("%2d%s", d.Day.Day(), glyph)
		switch {
		case d.Day.String() == selected:
			cell = selectedStyle.Render(cell)
		case d.IsToday:
			cell = todayStyle.Render(cell)
		case d.IsFuture:
			cell = dimStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

// StreakLine summarizes a card as "🔥 3 current · 7 best · 21 total".
func StreakLine(card tracker.Card) string {
	return fmt.Sprintf("%s %d current · %d best · %d total",
		theme.IconFor(card.Habit.Icon).Glyph, card.Streak.Current, card.Streak.Best, card.Streak.Total)
}
