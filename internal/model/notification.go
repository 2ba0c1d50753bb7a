// Package model defines the records kept in the lore database.
package model

// Notification is a message shown on every run until it is dismissed.
type Notification struct {
	// ID is assigned by the database and increases with each insert.
	ID int64 `json:"id" db:"id"`

	// Title is the notification text.
	Title string `json:"title" db:"title"`

	// CreatedAt is the local creation time, "YYYY-MM-DD HH:MM:SS".
	CreatedAt string `json:"created_at" db:"created_at"`

	// DismissedAt is nil while the notification is active.
	// Once set it is never cleared.
	DismissedAt *string `json:"dismissed_at,omitempty" db:"dismissed_at"`
}

// Active reports whether the notification has not been dismissed.
func (n Notification) Active() bool {
	return n.DismissedAt == nil
}
