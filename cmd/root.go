package cmd

import (
	"fmt"

	"github.com/dkasab/unveil/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unveil",
	Short: "Comprehension-gated code reveal",
	Long:  "Unveil — terminal app that gates AI-generated code behind comprehension questions, revealing more of each snippet as you answer correctly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UNVEIL_DB env var)")

	rootCmd.Flags().StringP("conversation", "c", "default", "Conversation to open or resume")
	rootCmd.Flags().Bool("allow-skip", false, "Allow skipping quiz gates (new artifacts start fully visible)")
	rootCmd.Flags().String("transcript", "", "Assistant transcript file to ingest on startup")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UNVEIL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store. Every
// database-touching subcommand starts here.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
