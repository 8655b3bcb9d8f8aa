// Package cli wires command tests to an in-memory app.
// It is separate from testutil to avoid import cycles when service tests import testutil.
package cli

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/app"
	tallycli "github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and App instance
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo)
}

// Execute runs cmd with args against appInstance
func Execute(t *testing.T, appInstance *app.App, cmd *cobra.Command, args ...string) (testutil.Output, error) {
	t.Helper()
	return ExecuteWithInput(t, appInstance, cmd, nil, args...)
}

// ExecuteWithInput is Execute with stdin fed from in
func ExecuteWithInput(t *testing.T, appInstance *app.App, cmd *cobra.Command, in io.Reader, args ...string) (testutil.Output, error) {
	t.Helper()
	cmd.SetContext(tallycli.WithApp(context.Background(), appInstance))
	testutil.SetupCobraCommand(cmd, args)
	return testutil.ExecuteCommand(t, cmd, in)
}
