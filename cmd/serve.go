package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Long: `Serve the /todos and /labels API until SIGINT or SIGTERM, then shut
down gracefully within server.shutdown_timeout.

Examples:
  tally serve
  tally serve --addr=127.0.0.1:8080 --backend=memory
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default :3000)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := cli.ConfigFromContext(ctx)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close app", "error", err)
		}
	}()

	srv, err := server.New(application, cfg.Server)
	if err != nil {
		return err
	}

	slog.Info("tally server starting",
		"address", cfg.Server.Address,
		"backend", cfg.Database.Backend,
		"pid", os.Getpid())

	return srv.Run(ctx)
}
