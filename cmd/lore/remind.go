package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/lore/internal/dateformat"
	"github.com/matsen/lore/internal/loreerr"
)

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().SetInterspersed(false)
}

var remindCmd = &cobra.Command{
	Use:   "remind [<title...> <YYYY-MM-DD> [period]]",
	Short: "Add a reminder or list due reminders",
	Long: `With no arguments, list reminders due today or earlier.

Otherwise add a reminder. The first argument that looks like a YYYY-MM-DD
date ends the title; the words before it are the title. Anything after the
date would be a repeat period, which is not supported yet.

Example:
  lore remind pay rent 2025-03-01`,
	RunE: runRemind,
}

// remindArgs is the parsed form of "remind <title...> <date> [period]".
type remindArgs struct {
	title       string
	scheduledAt string
	period      string
}

// parseRemindArgs scans args left to right; the first token accepted by v
// becomes the date.
func parseRemindArgs(args []string, v dateformat.Validator) (remindArgs, error) {
	for i, arg := range args {
		date, ok := v.Canonical(arg)
		if !ok {
			continue
		}
		return remindArgs{
			title:       strings.Join(args[:i], " "),
			scheduledAt: date,
			period:      strings.Join(args[i+1:], " "),
		}, nil
	}
	return remindArgs{}, loreerr.New(loreerr.CodeValidation,
		"expected date: YYYY-MM-DD (usage: lore remind [<title> <date> [period]])")
}

func runRemind(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if len(args) == 0 {
		return showDueReminders(cmd, s)
	}

	parsed, err := parseRemindArgs(args, s.dates)
	if err != nil {
		return err
	}
	if parsed.period != "" {
		return loreerr.New(loreerr.CodeUnsupported,
			"periodic reminders are not implemented (period "+parsed.period+")")
	}

	id, err := s.db.CreateReminder(ctx, parsed.title, parsed.scheduledAt, nil)
	if err != nil {
		return err
	}
	return s.out.reminderCreated(id, parsed.title, parsed.scheduledAt)
}

func showDueReminders(cmd *cobra.Command, s *session) error {
	due, err := s.db.ListDueReminders(cmd.Context(), now())
	if err != nil {
		return err
	}
	return s.out.reminders(due)
}
