package cli

import (
	"fmt"

	"github.com/julianstephens/groove/internal/models"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Frequency   string `help:"Frequency: daily, weekly, monthly, weekdays, specificDate, once." default:"daily"`
	Days        string `help:"Comma-separated weekdays for the weekdays frequency (e.g. mon,wed,fri)."`
	Date        string `help:"Due date (YYYY-MM-DD) for the specificDate frequency."`
	Target      int    `help:"Completions required per due day." default:"1"`
	Description string `help:"Optional description."`
	Category    string `help:"Optional category label."`
	Color       string `help:"Optional display color (hex)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	input := models.HabitInput{
		Name:         c.Name,
		Description:  c.Description,
		Category:     c.Category,
		Color:        c.Color,
		Frequency:    models.Frequency(c.Frequency),
		SpecificDate: c.Date,
		TargetCount:  c.Target,
	}

	if c.Days != "" {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		input.SelectedDays = days
	}

	habit, err := ctx.Engine.CreateHabit(input)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit %q (%s)\n", habit.Name, formatFrequency(habit))
	return nil
}

type HabitListCmd struct {
	All     bool `help:"Include archived habits."`
	Deleted bool `help:"Include soft-deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Engine.ListHabits(c.All, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		status := "active"
		if h.DeletedAt != nil {
			status = "deleted"
		} else if h.ArchivedAt != nil {
			status = "archived"
		}

		fmt.Printf("  [%s] %s - %s", status, h.Name, formatFrequency(h))
		if h.Target() > 1 {
			fmt.Printf(" (target %d/day)", h.Target())
		}
		if h.Category != "" {
			fmt.Printf(" #%s", h.Category)
		}
		fmt.Println()
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}

	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Engine.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Archived habit %q. History is kept; it is no longer due.\n", habit.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Engine.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Unarchived habit %q\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Engine.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q (use 'groove habit restore' to undo)\n", habit.Name)
	return nil
}

type HabitRestoreCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Deleted habits don't resolve by name, so look across deleted rows too.
	habits, err := ctx.Engine.ListHabits(true, true)
	if err != nil {
		return err
	}

	for _, h := range habits {
		if (h.ID == c.Habit || h.Name == c.Habit) && h.DeletedAt != nil {
			if err := ctx.Store.RestoreHabit(h.ID); err != nil {
				return err
			}
			fmt.Printf("Restored habit %q\n", h.Name)
			return nil
		}
	}

	return fmt.Errorf("no deleted habit matches %q", c.Habit)
}
