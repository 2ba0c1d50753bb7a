package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/matsen/lore/internal/loreerr"
	"github.com/matsen/lore/internal/model"
)

// selectNotificationFields converts stored UTC timestamps to local time for display.
const selectNotificationFields = `id, title,
	datetime(created_at, 'localtime') AS created_at,
	datetime(dismissed_at, 'localtime') AS dismissed_at`

// CreateNotification inserts a notification and returns its id.
func (d *DB) CreateNotification(ctx context.Context, title string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, loreerr.New(loreerr.CodeValidation, "notification title must not be empty")
	}

	res, err := d.db.ExecContext(ctx, `INSERT INTO Notifications (title) VALUES (?)`, title)
	if err != nil {
		return 0, storageErr("inserting notification", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading notification id", err)
	}
	return id, nil
}

// ListActiveNotifications returns undismissed notifications in creation order.
func (d *DB) ListActiveNotifications(ctx context.Context) ([]model.Notification, error) {
	notifs := []model.Notification{}
	err := d.db.SelectContext(ctx, &notifs, `
		SELECT `+selectNotificationFields+`
		FROM Notifications
		WHERE dismissed_at IS NULL
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, storageErr("querying active notifications", err)
	}
	return notifs, nil
}

// GetNotification looks up a notification by id, dismissed or not.
func (d *DB) GetNotification(ctx context.Context, id int64) (*model.Notification, error) {
	var n model.Notification
	err := d.db.GetContext(ctx, &n, `
		SELECT `+selectNotificationFields+`
		FROM Notifications
		WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loreerr.New(loreerr.CodeNotFound, fmt.Sprintf("notification %d does not exist", id))
		}
		return nil, storageErr(fmt.Sprintf("getting notification %d", id), err)
	}
	return &n, nil
}

// DismissNotification marks a notification as dismissed.
// Dismissing an already-dismissed notification is a no-op that keeps the
// original dismissal time; an unknown id is a NotFound error.
func (d *DB) DismissNotification(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE Notifications
		SET dismissed_at = CURRENT_TIMESTAMP
		WHERE id = ? AND dismissed_at IS NULL
	`, id)
	if err != nil {
		return storageErr(fmt.Sprintf("dismissing notification %d", id), err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(fmt.Sprintf("dismissing notification %d", id), err)
	}
	if n > 0 {
		return nil
	}

	var count int
	if err := d.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM Notifications WHERE id = ?`, id); err != nil {
		return storageErr(fmt.Sprintf("checking notification %d", id), err)
	}
	if count == 0 {
		return loreerr.New(loreerr.CodeNotFound, fmt.Sprintf("notification %d does not exist", id))
	}
	return nil
}

// DismissNotificationAt dismisses the notification at a zero-based position
// in the current active list. The list is re-read on every call, so the
// position is resolved against the database as it is now.
func (d *DB) DismissNotificationAt(ctx context.Context, position int) error {
	notifs, err := d.ListActiveNotifications(ctx)
	if err != nil {
		return err
	}

	if position < 0 || position >= len(notifs) {
		return loreerr.New(loreerr.CodeIndexOutOfRange,
			fmt.Sprintf("%d is not a valid index of an active notification", position))
	}

	return d.DismissNotification(ctx, notifs[position].ID)
}
