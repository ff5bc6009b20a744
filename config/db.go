package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
)

// OpenDB connects to the database named by DATABASE_URL. The driver is
// picked from the DSN scheme; with no DATABASE_URL at all the app falls
// back to an embedded SQLite file so it runs with zero external services.
func OpenDB(cfg Config) (*sqlx.DB, error) {
	driver, dsn := resolveDSN(cfg.DatabaseURL)

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	maxOpen := viper.GetInt("DB_MAX_OPEN_CONNS")
	if maxOpen == 0 {
		maxOpen = 25
	}
	maxIdle := viper.GetInt("DB_MAX_IDLE_CONNS")
	if maxIdle == 0 {
		maxIdle = 10
	}
	maxLifetime := viper.GetDuration("DB_CONN_MAX_LIFETIME")
	if maxLifetime == 0 {
		maxLifetime = 5 * time.Minute
	}
	maxIdleTime := viper.GetDuration("DB_CONN_MAX_IDLE_TIME")
	if maxIdleTime == 0 {
		maxIdleTime = 1 * time.Minute
	}

	if driver == "sqlite3" {
		// SQLite serializes writers; a single connection avoids
		// SQLITE_BUSY under concurrent admin writes.
		maxOpen = 1
		maxIdle = 1
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return db, nil
}

func resolveDSN(raw string) (driver, dsn string) {
	switch {
	case raw == "":
		return "sqlite3", "file:portfolio.db?_fk=1&_journal_mode=WAL"
	case strings.HasPrefix(raw, "sqlite:"):
		return "sqlite3", strings.TrimPrefix(raw, "sqlite:")
	default:
		// postgres:// and postgresql:// DSNs go to lib/pq verbatim.
		return "postgres", raw
	}
}

// DriverName reports the driver OpenDB would select for a DSN, used by the
// migration runner to pick the matching goose dialect.
func DriverName(raw string) string {
	driver, _ := resolveDSN(raw)
	return driver
}
