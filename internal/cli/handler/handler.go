// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/tally/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute implements Handler
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags.
// Flags only holds flags the user set explicitly.
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic.
// Errors are reported through the formatter and returned as *cli.CodedError.
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{
			JSON:   jsonOutput,
			Quiet:  quietMode,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return report(formatter, err)
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return report(formatter, err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

func report(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.Fail(err); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &cli.CodedError{Code: cli.ExitCode(err), Err: err}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "intSlice":
			if v, err := cmd.Flags().GetIntSlice(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether the user set the flag
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	val, ok := a.Flags[name].(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	val, ok := a.Flags[name].(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	val, _ := a.Flags[name].(bool)
	return val
}

// GetIntSlice retrieves an int slice flag with default
func (a *Arguments) GetIntSlice(name string, defaultVal []int) []int {
	val, ok := a.Flags[name].([]int)
	if !ok {
		return defaultVal
	}
	return val
}
