package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/groove/internal/backup"
	"github.com/julianstephens/groove/internal/engine"
	"github.com/julianstephens/groove/internal/logger"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// PerformAutomaticBackup backs up the database on startup of long-running
// commands. JSON stores are skipped since they are plain files.
func (ctx *Context) PerformAutomaticBackup() {
	path := ctx.Store.GetConfigPath()
	if strings.HasSuffix(path, ".json") {
		return
	}

	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

func parseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

func formatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		return fmt.Sprintf("weekly on %s", h.CreatedAt.UTC().Weekday().String()[:3])
	case models.FrequencyMonthly:
		return fmt.Sprintf("monthly on day %d", h.CreatedAt.UTC().Day())
	case models.FrequencyWeekdays:
		var days []string
		for _, wd := range h.SelectedDays {
			days = append(days, wd.String()[:3])
		}
		return fmt.Sprintf("on %s", strings.Join(days, ","))
	case models.FrequencySpecificDate:
		return fmt.Sprintf("on %s", h.SpecificDate)
	case models.FrequencyOnce:
		return "once"
	default:
		return "unknown"
	}
}

// dayOrToday resolves an optional day flag, defaulting to the current day.
func dayOrToday(ctx *Context, day string) string {
	if day == "" {
		return ctx.Engine.Today()
	}
	return day
}
