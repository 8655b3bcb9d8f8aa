package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all labels",
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			return withCLI(ctx, func(c *cli.CLI) (any, error) {
				return c.App.LabelService.ListLabels(ctx)
			})
		})),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}
