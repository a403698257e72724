package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/models"
)

type JournalWriteCmd struct {
	Content string `arg:"" help:"Entry text."`
	Mood    string `help:"Mood: great, happy, okay, sad, stressed."`
	Day     string `help:"Day of the entry (YYYY-MM-DD), defaults to today."`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry := models.JournalEntry{
		Day:     dayOrToday(ctx, c.Day),
		Content: c.Content,
		Mood:    models.Mood(c.Mood),
	}

	if err := ctx.Engine.WriteJournal(entry); err != nil {
		return err
	}

	fmt.Printf("Journal entry saved for %s\n", entry.Day)
	return nil
}

type JournalShowCmd struct {
	Day string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := dayOrToday(ctx, c.Day)
	entry, err := ctx.Engine.GetJournal(day)
	if err != nil {
		return err
	}

	printEntry(entry)
	return nil
}

type JournalListCmd struct {
	From string `help:"Start day (YYYY-MM-DD), defaults to 7 days ago."`
	To   string `help:"End day (YYYY-MM-DD), defaults to today."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
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
		from = dateutil.FormatDay(dateutil.AddDays(end, -6))
	}

	entries, err := ctx.Engine.ListJournal(from, to)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No journal entries between %s and %s\n", from, to)
		return nil
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Println()
		}
		printEntry(entry)
	}
	return nil
}

func printEntry(entry models.JournalEntry) {
	header := entry.Day
	if entry.Mood != "" {
		header += fmt.Sprintf(" (%s)", entry.Mood)
	}
	fmt.Println(header)
	for _, line := range strings.Split(entry.Content, "\n") {
		fmt.Printf("  %s\n", line)
	}
}
