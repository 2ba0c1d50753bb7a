package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matsen/lore/internal/loreerr"
	"github.com/matsen/lore/internal/model"
)

// output renders command results either as human-readable lines or JSON.
type output struct {
	w, errW io.Writer
	json    bool

	index  lipgloss.Style
	stamp  lipgloss.Style
	accent lipgloss.Style
	warnSt lipgloss.Style
}

func newOutput(w, errW io.Writer, asJSON bool) *output {
	// Renderers bound to the writers keep piped output free of escape codes.
	r := lipgloss.NewRenderer(w)
	er := lipgloss.NewRenderer(errW)
	return &output{
		w:      w,
		errW:   errW,
		json:   asJSON,
		index:  r.NewStyle().Bold(true),
		stamp:  r.NewStyle().Faint(true),
		accent: r.NewStyle().Foreground(lipgloss.Color("2")),
		warnSt: er.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// notice prints an informational line. In JSON mode it goes to stderr so
// stdout stays parseable.
func (o *output) notice(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if o.json {
		fmt.Fprintln(o.errW, msg)
		return
	}
	fmt.Fprintln(o.w, o.accent.Render(msg))
}

// warn prints a non-fatal diagnostic to stderr.
func (o *output) warn(format string, args ...interface{}) {
	fmt.Fprintln(o.errW, o.warnSt.Render("warn: "+fmt.Sprintf(format, args...)))
}

// NotificationsResponse is the JSON shape of a notification listing.
type NotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
}

// RemindersResponse is the JSON shape of a reminder listing.
type RemindersResponse struct {
	Reminders []model.Reminder `json:"reminders"`
}

// ReminderCreatedResponse is the JSON response for a new reminder.
type ReminderCreatedResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ScheduledAt string `json:"scheduled_at"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string       `json:"error"`
	Code  loreerr.Code `json:"code,omitempty"`
}

// notifications prints the active notifications as "i: title (created_at)".
func (o *output) notifications(notifs []model.Notification) error {
	if o.json {
		return outputJSON(o.w, NotificationsResponse{Notifications: notifs})
	}
	for i, n := range notifs {
		fmt.Fprintf(o.w, "%s %s %s\n",
			o.index.Render(fmt.Sprintf("%d:", i)), n.Title, o.stamp.Render("("+n.CreatedAt+")"))
	}
	return nil
}

// reminders prints due reminders as "i: title [scheduled_at]".
func (o *output) reminders(rems []model.Reminder) error {
	if o.json {
		return outputJSON(o.w, RemindersResponse{Reminders: rems})
	}
	for i, r := range rems {
		fmt.Fprintf(o.w, "%s %s %s\n",
			o.index.Render(fmt.Sprintf("%d:", i)), r.Title, o.stamp.Render("["+r.ScheduledAt+"]"))
	}
	return nil
}

// reminderCreated confirms a new reminder.
func (o *output) reminderCreated(id int64, title, scheduledAt string) error {
	if o.json {
		return outputJSON(o.w, ReminderCreatedResponse{ID: id, Title: title, ScheduledAt: scheduledAt})
	}
	fmt.Fprintf(o.w, "Reminder set for %s: %s\n", o.accent.Render(scheduledAt), title)
	return nil
}

// printError writes err to w, as JSON when --json is set.
func printError(w io.Writer, err error) {
	if jsonOutput {
		outputJSON(w, ErrorResponse{Error: err.Error(), Code: loreerr.CodeOf(err)})
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
