package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/spf13/cobra"
)

// Output holds what a command wrote to each stream
type Output struct {
	Stdout string
	Stderr string
}

// ExecuteCommand runs a cobra command and captures its output.
// in feeds stdin and may be nil.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, in io.Reader) (Output, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if in != nil {
		cmd.SetIn(in)
	}

	err := cmd.Execute()
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
