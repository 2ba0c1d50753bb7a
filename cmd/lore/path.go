package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/lore/internal/config"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

// PathResponse is the JSON response for the path command.
type PathResponse struct {
	Path        string `json:"path"`
	StrictDates bool   `json:"strict_dates"`
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the database path",
	Long: `Print the resolved database path without opening it.

The path comes from, in order: --db, LORE_DB, db_path in
~/.config/lore/config.yml, then .lore under $HOME ($PWD with --local).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.Options{DBPath: dbFlag, Local: localFlag})
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), PathResponse{Path: cfg.DBPath, StrictDates: cfg.StrictDates})
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.DBPath)
		return nil
	},
}
