package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matsen/lore/internal/dateformat"
	"github.com/matsen/lore/internal/loreerr"
	"github.com/matsen/lore/internal/model"
)

// scheduled_at is cast so the driver returns the stored text rather than
// parsing the DATE column into a time.Time.
const selectReminderFields = `id, title,
	datetime(created_at, 'localtime') AS created_at,
	CAST(scheduled_at AS TEXT) AS scheduled_at,
	period,
	datetime(finished_at, 'localtime') AS finished_at`

// CreateReminder inserts a reminder and returns its id. scheduledAt must
// already have passed the date validator; it is not re-checked here.
func (d *DB) CreateReminder(ctx context.Context, title, scheduledAt string, period *string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, loreerr.New(loreerr.CodeValidation, "reminder title must not be empty")
	}

	res, err := d.db.ExecContext(ctx,
		`INSERT INTO Reminders (title, scheduled_at, period) VALUES (?, ?, ?)`,
		title, scheduledAt, period,
	)
	if err != nil {
		return 0, storageErr("inserting reminder", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading reminder id", err)
	}
	return id, nil
}

// GetReminder looks up a reminder by id.
func (d *DB) GetReminder(ctx context.Context, id int64) (*model.Reminder, error) {
	var r model.Reminder
	err := d.db.GetContext(ctx, &r, `SELECT `+selectReminderFields+` FROM Reminders WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loreerr.New(loreerr.CodeNotFound, fmt.Sprintf("reminder %d does not exist", id))
		}
		return nil, storageErr(fmt.Sprintf("getting reminder %d", id), err)
	}
	return &r, nil
}

// ListDueReminders returns unfinished one-off reminders scheduled on or
// before today, oldest first. Periodic reminders are never due because
// recurrence is not implemented.
func (d *DB) ListDueReminders(ctx context.Context, today time.Time) ([]model.Reminder, error) {
	due := []model.Reminder{}
	err := d.db.SelectContext(ctx, &due, `
		SELECT `+selectReminderFields+`
		FROM Reminders
		WHERE finished_at IS NULL
			AND period IS NULL
			AND substr(scheduled_at, 1, 10) <= ?
		ORDER BY scheduled_at ASC, id ASC
	`, dateformat.Today(today))
	if err != nil {
		return nil, storageErr("querying due reminders", err)
	}
	return due, nil
}

// FinishReminderAt marks the reminder at a zero-based position in today's
// due list as finished.
func (d *DB) FinishReminderAt(ctx context.Context, today time.Time, position int) error {
	due, err := d.ListDueReminders(ctx, today)
	if err != nil {
		return err
	}

	if position < 0 || position >= len(due) {
		return loreerr.New(loreerr.CodeIndexOutOfRange,
			fmt.Sprintf("%d is not a valid index of a due reminder", position))
	}

	id := due[position].ID
	_, err = d.db.ExecContext(ctx, `
		UPDATE Reminders
		SET finished_at = CURRENT_TIMESTAMP
		WHERE id = ? AND finished_at IS NULL
	`, id)
	if err != nil {
		return storageErr(fmt.Sprintf("finishing reminder %d", id), err)
	}
	return nil
}
