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

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update the title, completion or labels of a task.
Only the flags you pass are changed. --label replaces the whole label set.

Examples:
  tally task update --id=3 --title="Buy oat milk"
  tally task update --id=3 --completed
  tally task update --id=3 --label=1 --label=4
  tally task update --id=3 --clear-labels
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("title", "", "New title, 1 to 100 characters")
	cmd.Flags().Bool("completed", false, "Mark completed (use --completed=false to reopen)")
	cmd.Flags().IntSlice("label", nil, "Label id to attach; replaces existing labels (repeatable)")
	cmd.Flags().Bool("clear-labels", false, "Remove all labels")
	handler.AddOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for task updates
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	var req models.UpdateTask
	if args.Has("title") {
		title := args.GetString("title", "")
		req.Title = &title
	}
	if args.Has("completed") {
		completed := args.GetBool("completed")
		req.Completed = &completed
	}
	if args.Has("label") {
		labels := args.GetIntSlice("label", []int{})
		req.Labels = &labels
	}
	if args.GetBool("clear-labels") {
		req.Labels = &[]int{}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	return cliInstance.App.TaskService.UpdateTask(ctx, args.GetInt("id", 0), req)
}

func parseUpdateFlags(cmd *cobra.Command) error {
	if err := handler.RequireFlags(cmd, "id"); err != nil {
		return err
	}
	if err := handler.Exclusive(cmd, "label", "clear-labels"); err != nil {
		return err
	}
	return handler.RequireOneOf(cmd, "title", "completed", "label", "clear-labels")
}
