package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task with its labels",
		Long: `Show a single task.

Examples:
  tally task show --id=3
  tally task show --id=3 --json
`,
		RunE: handler.Command(handler.HandlerFunc(runShow), parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	return cliInstance.App.TaskService.GetTask(ctx, args.GetInt("id", 0))
}

func parseIDFlag(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "id")
}
