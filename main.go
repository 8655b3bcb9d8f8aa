package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tally/cmd"
	"github.com/thenoetrevino/tally/internal/cli"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		// Data commands already reported the error through the formatter
		var exitErr *cli.CodedError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
