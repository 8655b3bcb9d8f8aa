package handler

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/models"
)

type idResult struct{ ID int }

func (r *idResult) GetID() int { return r.ID }

func newTestCommand(h Handler, parse func(*cobra.Command) error) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test", RunE: Command(h, parse), SilenceUsage: true, SilenceErrors: true}
	cmd.Flags().String("name", "", "")
	cmd.Flags().Int("id", 0, "")
	cmd.Flags().IntSlice("label", nil, "")
	AddOutputFlags(cmd)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestCommand_OnlySetFlagsAreCollected(t *testing.T) {
	var got *Arguments
	h := HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		got = args
		return &idResult{ID: 4}, nil
	})
	cmd, out, _ := newTestCommand(h, func(*cobra.Command) error { return nil })
	cmd.SetArgs([]string{"--name", "x", "--label", "3,1", "--quiet"})

	require.NoError(t, cmd.Execute())

	assert.True(t, got.Has("name"))
	assert.False(t, got.Has("id"))
	assert.Equal(t, "x", got.GetString("name", ""))
	assert.Equal(t, 9, got.GetInt("id", 9))
	assert.Equal(t, []int{3, 1}, got.GetIntSlice("label", nil))
	assert.Equal(t, "4\n", out.String())
}

func TestCommand_ParseErrorIsUsage(t *testing.T) {
	called := false
	h := HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		called = true
		return nil, nil
	})
	cmd, _, errOut := newTestCommand(h, func(cmd *cobra.Command) error {
		return RequireFlags(cmd, "name")
	})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.False(t, called)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, errOut.String(), "--name is required")
}

func TestCommand_HandlerErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &models.NotFoundError{ID: 2}, cli.ExitNotFound},
		{"duplicate", &models.DuplicateError{ID: 2}, cli.ExitDuplicate},
		{"other", errors.New("boom"), cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
				return nil, tt.err
			})
			cmd, out, _ := newTestCommand(h, func(*cobra.Command) error { return nil })
			cmd.SetArgs([]string{"--json"})

			err := cmd.Execute()

			var exitErr *cli.CodedError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.want, exitErr.Code)
			assert.Contains(t, out.String(), `"success":false`)
		})
	}
}

func TestExclusive(t *testing.T) {
	cmd, _, _ := newTestCommand(HandlerFunc(nil), nil)
	require.NoError(t, cmd.ParseFlags([]string{"--name", "a", "--id", "1"}))

	assert.Error(t, Exclusive(cmd, "name", "id"))
	assert.NoError(t, Exclusive(cmd, "name", "label"))
	assert.NoError(t, RequireOneOf(cmd, "label", "id"))
	assert.Error(t, RequireOneOf(cmd, "label"))
}
