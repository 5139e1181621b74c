package postgres

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

// Migrator runs the goose migrations found in a directory against one
// database. goose needs *sql.DB, so it opens its own handle through the pgx
// stdlib driver instead of borrowing the pool.
type Migrator struct {
	*goose.Provider
	db *sql.DB
}

// NewMigrator opens dsn and loads the SQL migrations from dir.
func NewMigrator(dsn, dir string) (*Migrator, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}

	return &Migrator{Provider: provider, db: db}, nil
}

// Close releases the database handle.
func (m *Migrator) Close() error {
	return m.db.Close()
}
