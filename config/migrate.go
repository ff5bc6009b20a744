package config

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed all:migrations
var migrationsFS embed.FS

// Migrate applies all pending schema migrations for the connected dialect.
func Migrate(db *sqlx.DB, cfg Config) error {
	driver := DriverName(cfg.DatabaseURL)

	dialect := "postgres"
	dir := "migrations/postgres"
	if driver == "sqlite3" {
		dialect = "sqlite3"
		dir = "migrations/sqlite"
	}

	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migrations subtree: %w", err)
	}

	goose.SetBaseFS(sub)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
