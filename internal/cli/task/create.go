package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task, optionally attaching labels by id.

Examples:
  # Create task (human-readable output)
  tally task create --title="Buy milk"

  # Attach labels in the given order
  tally task create --title="Buy milk" --label=2 --label=1

  # Quiet mode for bash capture
  TASK_ID=$(tally task create --title="Buy milk" --quiet)
`,
		RunE: handler.Command(&createHandler{}, parseCreateFlags),
	}

	cmd.Flags().String("title", "", "Task title, 1 to 100 characters (required)")
	cmd.Flags().IntSlice("label", nil, "Label id to attach (repeatable)")
	handler.AddOutputFlags(cmd)

	return cmd
}

// createHandler implements handler.Handler for task creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	return cliInstance.App.TaskService.CreateTask(ctx, models.CreateTask{
		Title:  args.GetString("title", ""),
		Labels: args.GetIntSlice("label", []int{}),
	})
}

func parseCreateFlags(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "title")
}
