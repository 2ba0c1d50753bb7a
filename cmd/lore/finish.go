package main

import (
	"time"

	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

func init() {
	rootCmd.AddCommand(finishCmd)
}

var finishCmd = &cobra.Command{
	Use:   "finish <index>",
	Short: "Finish a due reminder",
	Long: `Mark the reminder at <index>, as numbered by 'lore remind', as finished,
then show the reminders still due.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFinish,
}

func runFinish(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args, "finish")
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.db.FinishReminderAt(cmd.Context(), now(), index); err != nil {
		return err
	}
	return showDueReminders(cmd, s)
}
