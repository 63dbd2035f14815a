// Package migrator applies the goose SQL migrations shipped with the service.
package migrator

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

const dialect = "postgres"

type Migrator struct {
	db            *sql.DB
	migrationsDir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: migrationsDir,
	}
}

// SetLogger routes goose output. goose prints to stdout otherwise.
func SetLogger(l goose.Logger) { goose.SetLogger(l) }

func (m *Migrator) Up() error {
	const op = "migrator.Up"

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.Up(m.db, m.migrationsDir); err != nil {
		return fmt.Errorf("%s: %s: %w", op, m.migrationsDir, err)
	}
	return nil
}

// Version reports the latest applied migration.
func (m *Migrator) Version() (int64, error) {
	const op = "migrator.Version"

	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	v, err := goose.GetDBVersion(m.db)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (m *Migrator) Close() error { return m.db.Close() }
