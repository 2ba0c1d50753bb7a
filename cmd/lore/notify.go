package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/lore/internal/loreerr"
)

func init() {
	rootCmd.AddCommand(notifyCmd)
	// Everything after the first title word is title, dashes included.
	notifyCmd.Flags().SetInterspersed(false)
}

var notifyCmd = &cobra.Command{
	Use:   "notify <title...>",
	Short: "Add a notification",
	Long: `Add a notification and show the active list.

All arguments are joined with single spaces to form the title. Words after
the first one are never read as flags; use -- before a title that starts
with a dash.

Example:
  lore notify buy milk`,
	RunE: runNotify,
}

func runNotify(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return loreerr.New(loreerr.CodeUsage, "expected title (usage: lore notify <title>)")
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if _, err := s.db.CreateNotification(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	return showActiveNotifications(ctx, s)
}
