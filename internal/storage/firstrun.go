package storage

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// FirstRunStatus is the result of the first-run check.
type FirstRunStatus int

const (
	// AlreadyInitialized means an earlier run already saw this file.
	AlreadyInitialized FirstRunStatus = iota
	// FreshAndMarked means this run is the first to see the file, and the
	// marker has now been set.
	FreshAndMarked
)

func (s FirstRunStatus) String() string {
	if s == FreshAndMarked {
		return "fresh"
	}
	return "initialized"
}

// markerActive is the non-null value written to File_Creation.active.
const markerActive = 3

// MarkFirstCreation reports whether this is the first run against the
// database file and latches the answer, so FreshAndMarked is returned at
// most once per file. A marker row left unset by older versions is also
// treated as fresh.
func (d *DB) MarkFirstCreation(ctx context.Context) (FirstRunStatus, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return AlreadyInitialized, storageErr("beginning first-run check", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM File_Creation`); err != nil {
		return AlreadyInitialized, storageErr("counting File_Creation rows", err)
	}

	if count == 0 {
		if _, err := tx.ExecContext(ctx, `INSERT INTO File_Creation (active) VALUES (?)`, markerActive); err != nil {
			return AlreadyInitialized, storageErr("inserting File_Creation row", err)
		}
		return commitFresh(tx)
	}

	var first struct {
		ID     int64         `db:"id"`
		Active sql.NullInt64 `db:"active"`
	}
	if err := tx.GetContext(ctx, &first, `SELECT id, active FROM File_Creation ORDER BY id ASC LIMIT 1`); err != nil {
		return AlreadyInitialized, storageErr("reading File_Creation row", err)
	}
	if first.Active.Valid {
		return AlreadyInitialized, nil
	}

	if _, err := tx.ExecContext(ctx, `UPDATE File_Creation SET active = ? WHERE id = ?`, markerActive, first.ID); err != nil {
		return AlreadyInitialized, storageErr("updating File_Creation row", err)
	}
	return commitFresh(tx)
}

func commitFresh(tx *sqlx.Tx) (FirstRunStatus, error) {
	if err := tx.Commit(); err != nil {
		return AlreadyInitialized, storageErr("committing first-run marker", err)
	}
	return FreshAndMarked, nil
}
