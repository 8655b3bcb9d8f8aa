package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/thenoetrevino/tally/internal/ci"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Coverage reads the profile written by Test, so it runs second
	code := ci.NewRunner(os.Stdout, ci.DefaultSteps()...).Run(ctx)
	if code == 0 {
		code = ci.NewRunner(os.Stdout, ci.CoverageStep()).Run(ctx)
	}
	os.Exit(code)
}
