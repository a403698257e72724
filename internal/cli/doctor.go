package cli

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/julianstephens/groove/internal/backup"
	"github.com/julianstephens/groove/internal/migration"
	"github.com/julianstephens/groove/internal/schedule"
	"github.com/julianstephens/groove/internal/storage/sqlite"
	"github.com/julianstephens/groove/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Printf("✓ Storage reachable: OK\n")

	// Check 2: schema version (SQLite stores only)
	if store, ok := ctx.Store.(*sqlite.Store); ok {
		if err := checkSchemaVersion(store); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	}

	// Check 3: habit configuration is evaluable
	if err := checkHabitConfigs(ctx); err != nil {
		fmt.Printf("❌ Habit configuration: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Habit configuration: OK\n")
	}

	// Check 4: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.List(); err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found. Run 'groove backup create'.\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d found)\n", len(backups))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSchemaVersion(store *sqlite.Store) error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	runner := migration.NewRunner(store.GetDB(), subFS)

	current, err := runner.GetCurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind latest %d, run 'groove migrate'", current, latest)
	}
	return runner.ValidateVersion()
}

// checkHabitConfigs evaluates every habit once to surface malformed
// frequency configuration.
func checkHabitConfigs(ctx *Context) error {
	habits, err := ctx.Engine.ListHabits(true, false)
	if err != nil {
		return err
	}

	eval := schedule.NewEvaluator(ctx.Engine.Tracker().Source())
	now := time.Now()
	for _, h := range habits {
		if _, err := eval.IsDue(h, now); err != nil {
			return err
		}
	}
	return nil
}
