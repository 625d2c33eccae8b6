// Package cmd wires the CLI surface: every subcommand opens the store,
// resolves the local learner identity, and drives the coaching engine.
package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/llm"
	"github.com/ayinesh/studycoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studycoach",
	Short: "Adaptive study session coach",
	Long:  "Studycoach — terminal study coach that plans time-boxed sessions, schedules spaced review, and adapts pace and difficulty to your performance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYCOACH_DB env var)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// withEngine opens the store, builds the engine, and runs fn with the
// local learner's id. The LLM provider is optional: when no provider is
// configured the engine falls back to built-in templates and messages.
func withEngine(cmd *cobra.Command, fn func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	repos := s.Repos()

	provider, err := llm.NewProviderFromEnv(ctx, repos.Events)
	if err != nil {
		provider = nil
	}

	eng, err := engine.New(engine.Options{Repos: repos, Provider: provider})
	if err != nil {
		return err
	}

	userID, err := currentUserID(dbPath)
	if err != nil {
		return err
	}

	return fn(ctx, eng, userID)
}
