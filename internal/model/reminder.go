package model

// Reminder is a titled entry scheduled for a date.
// A nil Period means it fires once, on and after ScheduledAt, like a
// notification.
type Reminder struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
	ScheduledAt string  `json:"scheduled_at" db:"scheduled_at"`
	Period      *string `json:"period,omitempty" db:"period"`
	FinishedAt  *string `json:"finished_at,omitempty" db:"finished_at"`
}

// Due reports whether the reminder should be shown on the given day
// ("YYYY-MM-DD").
func (r Reminder) Due(today string) bool {
	if r.FinishedAt != nil || r.Period != nil {
		return false
	}
	scheduled := r.ScheduledAt
	if len(scheduled) > len(today) {
		scheduled = scheduled[:len(today)]
	}
	return scheduled <= today
}
