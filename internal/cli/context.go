package cli

import (
	"context"

	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp injects an already opened app; commands use it instead of opening a store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the loaded configuration for commands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the stored configuration, or the defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the running command.
// The caller must Close it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx, ConfigFromContext(ctx))
}
