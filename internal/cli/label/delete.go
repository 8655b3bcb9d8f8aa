package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a label",
		Long:  "Delete a label by ID. The label is removed from every task that carries it.",
		RunE: handler.Command(handler.HandlerFunc(runDelete), func(cmd *cobra.Command) error {
			return handler.RequireFlags(cmd, "id")
		}),
	}

	cmd.Flags().Int("id", 0, "Label ID (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		if err := c.App.LabelService.DeleteLabel(ctx, id); err != nil {
			return nil, err
		}
		return &cli.Deleted{Kind: "label", ID: id}, nil
	})
}
