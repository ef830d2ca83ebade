package cmd

import (
	"fmt"

	"github.com/oselot/stitchpath/internal/app"
	"github.com/oselot/stitchpath/internal/curriculum"
	"github.com/oselot/stitchpath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stitchpath",
	Short: "Mastery tracking and session scoring for practice paths",
	Long: "Stitchpath tracks how well a learner has mastered each item in a\n" +
		"multi-path curriculum, schedules spaced reviews as mastery decays,\n" +
		"and scores completed practice sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STITCHPATH_DB env var)")

	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STITCHPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and wires the session workflow service.
// The returned closer must be called when the command finishes.
func openService(cmd *cobra.Command) (*app.Service, func() error, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc := app.New(st.ProgressRepo(), st.EventRepo(), curriculum.Default())
	return svc, st.Close, nil
}
