// Package storage provides SQLite persistence for solved runs.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// DefaultDBPath returns the default database path in the user's home
// directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".ogear")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "ogear.db"), nil
}

// Open opens (or creates) the SQLite database at the given path and
// applies the schema.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{DB: db, path: dbPath}, nil
}

// OpenDefault opens the database at the default path.
func OpenDefault() (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	solve_id        TEXT PRIMARY KEY,
	created_at      TEXT NOT NULL,
	origin_side     INTEGER NOT NULL,
	origin_axis     TEXT NOT NULL,
	origin_tooth    INTEGER NOT NULL,
	origin_polarity INTEGER NOT NULL,
	target_side     INTEGER NOT NULL,
	target_axis     TEXT NOT NULL,
	target_tooth    INTEGER NOT NULL,
	target_polarity INTEGER NOT NULL,
	step_count      INTEGER NOT NULL,
	steps_text      TEXT NOT NULL,
	notes           TEXT
);

CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at);
`

// applySchema creates the schema if it does not exist. Idempotent, so
// it runs unconditionally on every open.
func applySchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
