package cli

import (
	"fmt"
	"io/fs"

	"github.com/julianstephens/groove/internal/migration"
	"github.com/julianstephens/groove/internal/storage/sqlite"
	"github.com/julianstephens/groove/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrations only apply to SQLite storage")
	}

	if err := store.Load(); err != nil {
		return err
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}

	runner := migration.NewRunner(store.GetDB(), subFS)
	applied, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		fmt.Println("Nothing to migrate.")
	}
	return nil
}
