package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/groove/internal/constants"
	"github.com/julianstephens/groove/internal/models"
)

type HabitFormModel struct {
	Name      string
	Frequency models.Frequency
	Days      string
	Date      string
	Target    string
	Category  string
}

type JournalFormModel struct {
	Day     string
	Content string
	Mood    models.Mood
}

// NewHabitForm creates the add-habit form
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
					huh.NewOption("Monthly", models.FrequencyMonthly),
					huh.NewOption("Specific weekdays", models.FrequencyWeekdays),
					huh.NewOption("Specific date", models.FrequencySpecificDate),
					huh.NewOption("Once", models.FrequencyOnce),
				).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Weekdays").
				Description("Comma-separated (e.g. mon,wed,fri), only for specific weekdays").
				Value(&fm.Days),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Only for the specific date frequency").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Target per day").
				Value(&fm.Target).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("target must be at least 1")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Description("Optional label").
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewJournalForm creates the journal entry form
func NewJournalForm(fm *JournalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Journal for %s", fm.Day)).
				Value(&fm.Content),
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(
					huh.NewOption("😄 Great", models.MoodGreat),
					huh.NewOption("🙂 Happy", models.MoodHappy),
					huh.NewOption("😐 Okay", models.MoodOkay),
					huh.NewOption("😞 Sad", models.MoodSad),
					huh.NewOption("😫 Stressed", models.MoodStressed),
				).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

// parseDayNames converts a comma-separated weekday string to weekday values.
func parseDayNames(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	names := map[string]time.Weekday{
		"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
		"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
		"sat": time.Saturday,
	}

	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if len(part) > 3 {
			part = part[:3]
		}
		wd, ok := names[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, wd)
	}
	return days, nil
}
