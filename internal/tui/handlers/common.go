package handlers

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/avinash6817/habit-ticker/internal/constants"
	"github.com/avinash6817/habit-ticker/internal/datekey"
	"github.com/avinash6817/habit-ticker/internal/theme"
	"github.com/avinash6817/habit-ticker/internal/tui/state"
	"github.com/avinash6817/habit-ticker/internal/utils"
)

// NewHabitForm creates the add habit form
func NewHabitForm(fm *state.HabitFormModel) *huh.Form {
	colors := make([]huh.Option[string], 0, len(theme.Colors()))
	for _, c := range theme.Colors() {
		colors = append(colors, huh.NewOption(c.Name, c.Name))
	}
	icons := make([]huh.Option[string], 0, len(theme.Icons()))
	for _, i := range theme.Icons() {
		icons = append(icons, huh.NewOption(i.Glyph+" "+i.Name, i.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				CharLimit(constants.MaxHabitNameLen).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Colour").
				Options(colors...).
				Value(&fm.Color),
			huh.NewSelect[string]().
				Title("Icon").
				Options(icons...).
				Value(&fm.Icon),
		),
	).WithShowHelp(true)
}

// NewTaskForm creates the add task form
func NewTaskForm(fm *state.TaskFormModel) *huh.Form {
	priorities := huh.NewOptions(constants.Priorities...)
	categories := huh.NewOptions(constants.Categories...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				CharLimit(constants.MaxTaskDescription).
				Value(&fm.Description),
			huh.NewInput().
				Title("Due (YYYY-MM-DD)").
				Value(&fm.Due).
				Validate(func(s string) error {
					_, err := datekey.Parse(strings.TrimSpace(s))
					return err
				}),
			huh.NewInput().
				Title("Reminder").
				Description("e.g. 09:00 AM, blank for none").
				Value(&fm.Reminder).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := utils.ParseReminderTime(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorities...).
				Value(&fm.Priority),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&fm.Category),
		),
	).WithShowHelp(true)
}

// NewConfirmationForm creates a yes/no confirmation
func NewConfirmationForm(title string, fm *state.ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	)
}
