package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matsen/lore/internal/loreerr"
)

var dismissID int64

func init() {
	rootCmd.AddCommand(dismissCmd)
	dismissCmd.Flags().Int64Var(&dismissID, "id", 0, "Dismiss by stable notification id instead of position")
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss <index>",
	Short: "Dismiss an active notification",
	Long: `Dismiss the active notification at <index>, as numbered by 'lore checkout',
then show the remaining ones.

Dismissed notifications stay in the database; they are only hidden.

Examples:
  lore dismiss 0
  lore dismiss --id 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDismiss,
}

func runDismiss(cmd *cobra.Command, args []string) error {
	byID := cmd.Flags().Changed("id")
	if byID && len(args) > 0 {
		return loreerr.New(loreerr.CodeUsage, "give either <index> or --id, not both")
	}
	if byID && dismissID <= 0 {
		return loreerr.New(loreerr.CodeValidation, fmt.Sprintf("invalid id %d: ids start at 1", dismissID))
	}

	var index int
	if !byID {
		var err error
		if index, err = parseIndex(args, "dismiss"); err != nil {
			return err
		}
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if byID {
		err = s.db.DismissNotification(ctx, dismissID)
	} else {
		err = s.db.DismissNotificationAt(ctx, index)
	}
	if err != nil {
		return err
	}
	return showActiveNotifications(ctx, s)
}

// parseIndex reads the single position argument of dismiss and finish.
func parseIndex(args []string, command string) (int, error) {
	if len(args) == 0 {
		return 0, loreerr.New(loreerr.CodeUsage,
			fmt.Sprintf("expected index (usage: lore %s <index>)", command))
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, loreerr.New(loreerr.CodeValidation, fmt.Sprintf("invalid index %q", args[0]))
	}
	return index, nil
}
