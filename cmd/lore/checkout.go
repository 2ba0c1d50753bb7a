package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Show active notifications",
	Long: `Show active notifications, numbered by position.

The position is what 'lore dismiss <index>' expects.`,
	Args: cobra.NoArgs,
	RunE: runCheckout,
}

func runCheckout(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	return showActiveNotifications(cmd.Context(), s)
}

func showActiveNotifications(ctx context.Context, s *session) error {
	notifs, err := s.db.ListActiveNotifications(ctx)
	if err != nil {
		return err
	}
	return s.out.notifications(notifs)
}
