package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/groove/internal/cli"
	"github.com/julianstephens/groove/internal/constants"
	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/engine"
	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/logger"
	"github.com/julianstephens/groove/internal/storage"
	"github.com/julianstephens/groove/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/groove/groove.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize groove storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's due habits."`
	Mark     cli.MarkCmd     `cmd:"" help:"Mark a habit done."`
	Unmark   cli.UnmarkCmd   `cmd:"" help:"Undo a habit completion."`
	Log      cli.LogCmd      `cmd:"" help:"Show the recent completion grid."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show stats for a habit."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a monthly calendar for a habit."`
	Habit    struct {
		Add       cli.HabitAddCmd       `cmd:"" help:"Add a new habit."`
		List      cli.HabitListCmd      `cmd:"" help:"List habits."`
		Archive   cli.HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
		Unarchive cli.HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
		Delete    cli.HabitDeleteCmd    `cmd:"" help:"Delete a habit."`
		Restore   cli.HabitRestoreCmd   `cmd:"" help:"Restore a deleted habit."`
	} `cmd:"" help:"Manage habits."`
	Journal struct {
		Write cli.JournalWriteCmd `cmd:"" help:"Write today's journal entry."`
		Show  cli.JournalShowCmd  `cmd:"" help:"Show a journal entry."`
		List  cli.JournalListCmd  `cmd:"" help:"List recent journal entries."`
	} `cmd:"" help:"Manage journal entries."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending schema migrations."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Check storage health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, stats and a daily journal"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Storage backend follows the config file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(store, dateutil.SystemClock()),
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
