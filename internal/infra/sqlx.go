package infra

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/pressly/goose/v3"
	"tripplanner/internal/config"
	"tripplanner/internal/infra/migrations"
)

// sqlxDriverName maps the configured driver to the registered database/sql name.
func sqlxDriverName(driver string) (string, error) {
	switch driver {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// OpenSqlx connects through database/sql and applies the embedded goose
// migrations for the driver's dialect.
func OpenSqlx(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	name, err := sqlxDriverName(cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DatabaseURL
	if cfg.DBDriver == "sqlite" {
		dsn = SQLiteDSN(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, name, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	if err := RunMigrations(ctx, db, cfg.DBDriver); err != nil {
		db.Close()
		return nil, err
	}
	setPool(db.DB, cfg.DBDriver)
	return db, nil
}

func RunMigrations(ctx context.Context, db *sqlx.DB, driver string) error {
	var (
		fsys    embed.FS
		dir     string
		dialect string
	)
	switch driver {
	case "postgres":
		fsys, dir, dialect = migrations.Postgres, "postgres", "postgres"
	case "sqlite":
		fsys, dir, dialect = migrations.SQLite, "sqlite", "sqlite3"
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
