package system

import (
	"fmt"
	"io/fs"

	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/migration"
	"github.com/gugan-zemuria/habitctl/internal/storage/sqlite"
	"github.com/gugan-zemuria/habitctl/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate command currently supports SQLite storage only; PostgreSQL migrations run automatically on init")
	}

	if err := store.Load(); err != nil {
		return err
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	runner := migration.NewRunner(store.GetDB(), subFS, migration.DialectSQLite)

	applied, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		fmt.Println("Database is already up to date.")
		return nil
	}

	latest, err := runner.CurrentVersion()
	if err != nil {
		return err
	}
	fmt.Printf("Applied %d migration(s). Schema is now at version %d.\n", applied, latest)
	return nil
}
