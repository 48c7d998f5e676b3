// Package cli defines the command-line interface of bitree.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bitree/internal/config"
	"github.com/g-m-twostay/go-bitree/internal/logging"
)

const defaultEnvFile = ".env"

// Options stores global CLI options shared between commands.
type Options struct {
	EnvFile  string
	LogLevel logging.Level
	// Config holds the defaults loaded from the environment; command flags
	// that were not set explicitly fall back to it.
	Config config.Config
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	rootCmd := newRootCommand(&Options{EnvFile: defaultEnvFile, LogLevel: logging.LevelInfo}, logger)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitree",
		Short: "bitree builds, inspects and serializes binary search trees",
		Long: "bitree builds binary search trees of string payloads from inserts and deletes, " +
			"serializes them in preorder (dfs) or level order (bfs), and inspects serialized trees.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.EnvFile)
			if err != nil {
				return usageError(err)
			}
			opts.Config = cfg
			levelName := cfg.LogLevel
			if f := cmd.Flag("log-level"); f != nil && f.Changed {
				levelName = f.Value.String()
			}
			opts.LogLevel = logging.ParseLevel(levelName)
			logger = logging.NewLogger(cmd.ErrOrStderr(), opts.LogLevel)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("configuration loaded", "level", opts.LogLevel, "encoding", cfg.Encoding, "maxNodes", cfg.MaxNodes)
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", defaultEnvFile, "Optional .env file with BITREE_* defaults")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newBuildCommand(opts),
		newShowCommand(opts),
		newSearchCommand(opts),
		newWalkCommand(opts),
		newStatsCommand(opts),
	)
	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
