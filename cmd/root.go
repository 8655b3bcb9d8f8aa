// Package cmd assembles the tally command tree
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/label"
	"github.com/thenoetrevino/tally/internal/cli/task"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/logging"
)

// NewRootCmd builds the tally command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally - a small todo service with labels",
		Long: `Tally stores tasks and labels in SQLite (or memory) and serves them
over a JSON HTTP API. Every operation is also available from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.Log.Level, cfg.Log.File); err != nil {
				return err
			}
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default "+config.DefaultConfigPath()+")")
	flags.String("db", "", "SQLite database path")
	flags.String("backend", "", "Storage backend: sqlite or memory")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Append logs to this file instead of stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(label.LabelCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
