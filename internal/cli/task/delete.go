package task

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		RunE:  handler.Command(&deleteHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for task deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	svc := cliInstance.App.TaskService

	// Ask for confirmation unless forced or running non-interactively
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		task, err := svc.GetTask(ctx, taskID)
		if err != nil {
			return nil, err
		}

		cmd := args.GetCmd()
		fmt.Fprintf(cmd.OutOrStdout(), "Delete task #%d: '%s'? (y/N): ", taskID, task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			return &cli.Message{Text: "Cancelled"}, nil
		}
	}

	if err := svc.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}

	return &cli.Deleted{Kind: "task", ID: taskID}, nil
}
