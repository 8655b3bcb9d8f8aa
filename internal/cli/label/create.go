package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/models"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a new label. Names are unique and case sensitive.

Examples:
  tally label create --name="urgent"
  LABEL_ID=$(tally label create --name="urgent" --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate), func(cmd *cobra.Command) error {
			return handler.RequireFlags(cmd, "name")
		}),
	}

	cmd.Flags().String("name", "", "Label name, 1 to 100 characters (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		return c.App.LabelService.CreateLabel(ctx, models.CreateLabel{
			Name: args.GetString("name", ""),
		})
	})
}
