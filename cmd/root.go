package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizduel/internal/config"
	"github.com/abhisek/quizduel/internal/logging"
	"github.com/abhisek/quizduel/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "quizduel",
	Short:         "Learner performance analytics for the quiz duel game",
	Long:          "quizduel records every answer given in quiz matches and reports per-subject mastery, trends and repeated mistakes.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDUEL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides QUIZDUEL_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().StringP("learner", "l", "", "Learner id (defaults to QUIZDUEL_LEARNER)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(learnersCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("learner"); v != "" {
		cfg.LearnerID = v
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func newLogger(cfg *config.Config) *zap.Logger {
	return logging.New(cfg.LogLevel)
}
