package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks, newest first",
		Long: `List all tasks with their labels, newest first.

Examples:
  # Human-readable list
  tally task list

  # JSON output for agents
  tally task list --json

  # Quiet mode (one ID per line)
  tally task list --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	return cliInstance.App.TaskService.ListTasks(ctx)
}
