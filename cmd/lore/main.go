// Package main provides the lore CLI entry point.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/lore/internal/config"
	"github.com/matsen/lore/internal/dateformat"
	"github.com/matsen/lore/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// Global flags.
var (
	dbFlag     string
	localFlag  bool
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Errors are silenced on the root command and printed here.
		printError(os.Stderr, err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lore",
	Short: "Personal lore book of notifications and reminders",
	Long: `lore keeps notifications and reminders in a single local SQLite file
($HOME/.lore by default) and shows the active ones every time it runs.

Running lore with no command is the same as 'lore checkout'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheckout,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the lore database (overrides LORE_DB and config)")
	rootCmd.PersistentFlags().BoolVar(&localFlag, "local", false, "Keep the database in the current directory instead of $HOME")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.Version = Version
}

// session holds what a single command needs: the open database and where to
// write. It must be closed on every exit path.
type session struct {
	db    *storage.DB
	dates dateformat.Validator
	out   *output
}

func (s *session) Close() error {
	return s.db.Close()
}

// openSession resolves the database path, opens the database, ensures the
// schema and runs the first-run check.
func openSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	out := newOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonOutput)

	cfg, err := config.Load(config.Options{DBPath: dbFlag, Local: localFlag})
	if err != nil {
		return nil, err
	}

	db, err := storage.OpenDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	announceFirstRun(ctx, db, out)

	return &session{
		db:    db,
		dates: dateformat.Validator{Strict: cfg.StrictDates},
		out:   out,
	}, nil
}

// announceFirstRun prints the one-time creation message. A failure only
// warns; it never stops the command.
func announceFirstRun(ctx context.Context, db *storage.DB, out *output) {
	status, err := db.MarkFirstCreation(ctx)
	if err != nil {
		out.warn("checking first run: %v", err)
		return
	}
	if status == storage.FreshAndMarked {
		out.notice("Created database file here: %q", db.Path())
	}
}
