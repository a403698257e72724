package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/groove/internal/constants"
	"github.com/julianstephens/groove/internal/dateutil"
)

type MarkCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Day   string `help:"Day to mark (YYYY-MM-DD), defaults to today."`
}

func (c *MarkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := dayOrToday(ctx, c.Day)
	completion, err := ctx.Engine.MarkHabitDone(c.Habit, day)
	if err != nil {
		return err
	}

	habit, err := ctx.Engine.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	if completion.Count >= habit.Target() {
		fmt.Printf("✓ %s done for %s (%d/%d)\n", habit.Name, day, completion.Count, habit.Target())
	} else {
		fmt.Printf("%s marked for %s (%d/%d)\n", habit.Name, day, completion.Count, habit.Target())
	}
	return nil
}

type UnmarkCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Day   string `help:"Day to unmark (YYYY-MM-DD), defaults to today."`
}

func (c *UnmarkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := dayOrToday(ctx, c.Day)
	completion, err := ctx.Engine.UnmarkHabitDone(c.Habit, day)
	if err != nil {
		return err
	}

	fmt.Printf("Unmarked %s for %s (count now %d)\n", c.Habit, day, completion.Count)
	return nil
}

type TodayCmd struct {
	Day string `help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := dayOrToday(ctx, c.Day)
	due, err := ctx.Engine.DueHabitsFor(day)
	if err != nil {
		return err
	}

	if len(due) == 0 {
		fmt.Printf("Nothing due on %s\n", day)
		return nil
	}

	fmt.Printf("Due on %s:\n", day)
	for _, d := range due {
		box := "[ ]"
		if d.Satisfied {
			box = "[x]"
		}
		fmt.Printf("  %s %s", box, d.Habit.Name)
		if d.Habit.Target() > 1 {
			fmt.Printf(" (%d/%d)", d.Count, d.Habit.Target())
		}
		fmt.Println()
	}

	return nil
}

type StatsCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	From  string `help:"Start day (YYYY-MM-DD), defaults to 30 days ago."`
	To    string `help:"End day (YYYY-MM-DD), defaults to today."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	to := dayOrToday(ctx, c.To)
	from := c.From
	if from == "" {
		end, err := dateutil.ParseDay(to)
		if err != nil {
			return err
		}
		from = dateutil.FormatDay(dateutil.AddDays(end, -29))
	}

	habit, err := ctx.Engine.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	summary, err := ctx.Engine.Stats(c.Habit, from, to)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", habit.Name, formatFrequency(habit))
	fmt.Printf("  Period:          %s to %s\n", from, to)
	fmt.Printf("  Due days:        %d\n", summary.TotalDue)
	fmt.Printf("  Completed:       %d\n", summary.TotalSatisfied)
	fmt.Printf("  Completion rate: %d%%\n", summary.Rate)
	fmt.Printf("  Current streak:  %d\n", summary.CurrentStreak)
	fmt.Printf("  Longest streak:  %d\n", summary.LongestStreak)

	return nil
}

type CalendarCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Month string `help:"Month to show (YYYY-MM), defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var year int
	var month time.Month
	if c.Month == "" {
		today, err := dateutil.ParseDay(ctx.Engine.Today())
		if err != nil {
			return err
		}
		year, month = today.Year(), today.Month()
	} else {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	habit, err := ctx.Engine.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	grid, err := ctx.Engine.MonthlyCalendarView(c.Habit, year, month)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s %d\n", habit.Name, month, year)
	fmt.Println("  Su Mo Tu We Th Fr Sa")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	line := "  " + strings.Repeat("   ", int(first.Weekday()))
	for i, cell := range grid {
		sym := " ."
		switch {
		case cell.IsSatisfied:
			sym = " ✓"
		case cell.IsDue:
			sym = " ○"
		}
		line += sym + " "

		weekday := (int(first.Weekday()) + i) % 7
		if weekday == 6 || i == len(grid)-1 {
			fmt.Println(strings.TrimRight(line, " "))
			line = "  "
		}
	}

	fmt.Println("\n  ✓ done   ○ due   . not due")
	return nil
}

type LogCmd struct {
	Days int `help:"Number of days to show." default:"0"`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days := c.Days
	if days <= 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil || settings.LogDays <= 0 {
			days = constants.DefaultLogDays
		} else {
			days = settings.LogDays
		}
	}

	habits, err := ctx.Engine.ListHabits(false, false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	end, err := dateutil.ParseDay(ctx.Engine.Today())
	if err != nil {
		return err
	}
	start := dateutil.AddDays(end, -(days - 1))

	nameWidth := 0
	for _, h := range habits {
		if len(h.Name) > nameWidth {
			nameWidth = len(h.Name)
		}
	}

	// Header: day-of-month per column.
	header := strings.Repeat(" ", nameWidth+2)
	for d := start; !d.After(end); d = dateutil.AddDays(d, 1) {
		header += fmt.Sprintf("%2d ", d.Day())
	}
	fmt.Println(header)

	for _, h := range habits {
		set, err := ctx.Engine.Tracker().CompletionsInRange(h.ID, dateutil.FormatDay(start), dateutil.FormatDay(end))
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%-*s  ", nameWidth, h.Name)
		for d := start; !d.After(end); d = dateutil.AddDays(d, 1) {
			if set.Satisfied(h, dateutil.FormatDay(d)) {
				line += " ✓ "
			} else {
				line += " . "
			}
		}
		fmt.Println(line)
	}

	return nil
}
