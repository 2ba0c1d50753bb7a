// Package storage persists lore notifications, reminders and the first-run
// marker in a single SQLite file.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/matsen/lore/internal/loreerr"
)

// DB wraps a SQLite database connection.
type DB struct {
	db   *sqlx.DB
	path string
}

// schema is additive only: tables and columns are never dropped or renamed,
// so files written by older versions keep opening.
var schema = []struct {
	table string
	ddl   string
}{
	{"Notifications", `
		CREATE TABLE IF NOT EXISTS Notifications (
			id INTEGER PRIMARY KEY ASC,
			title TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			dismissed_at DATETIME DEFAULT NULL
		)`},
	{"Reminders", `
		CREATE TABLE IF NOT EXISTS Reminders (
			id INTEGER PRIMARY KEY ASC,
			title TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			scheduled_at DATE NOT NULL,
			period TEXT DEFAULT NULL,
			finished_at DATETIME DEFAULT NULL
		)`},
	{"File_Creation", `
		CREATE TABLE IF NOT EXISTS File_Creation (
			id INTEGER PRIMARY KEY ASC,
			active INTEGER DEFAULT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
}

// OpenDB opens or creates a SQLite database at the given path and ensures
// the schema exists. Use ":memory:" for a throwaway database.
func OpenDB(ctx context.Context, path string) (*DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, loreerr.Wrap(loreerr.CodeStorage, fmt.Sprintf("opening %s", path), err)
	}

	// SQLite doesn't support concurrent writes, and :memory: databases are
	// per-connection.
	db.SetMaxOpenConns(1)

	d := &DB{db: db, path: path}
	if err := d.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the path the database was opened with.
func (d *DB) Path() string {
	return d.path
}

// EnsureSchema creates any missing tables. It is safe to call on every run.
func (d *DB) EnsureSchema(ctx context.Context) error {
	for _, s := range schema {
		if _, err := d.db.ExecContext(ctx, s.ddl); err != nil {
			return storageErr(fmt.Sprintf("creating %s table in %s", s.table, d.path), err)
		}
	}
	return nil
}

// storageErr wraps a database failure so callers can match it by kind.
func storageErr(msg string, err error) error {
	return loreerr.Wrap(loreerr.CodeStorage, msg, err)
}
