package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool
}

// NewCLI opens the store selected by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:   application,
		owned: true,
	}, nil
}

// Close cleans up CLI resources. An injected app is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
