package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/models"
)

// seedTask is a sample task referencing seed labels by name
type seedTask struct {
	title     string
	labels    []string
	completed bool
}

var (
	seedLabels = []string{"bug", "feature", "chore"}
	seedTasks  = []seedTask{
		{title: "Fix auth bug", labels: []string{"bug"}},
		{title: "Refactor UI", labels: []string{"feature", "chore"}},
		{title: "Update deps", labels: []string{"chore"}},
		{title: "Add tests", labels: []string{"chore"}},
		{title: "Review PR #42"},
		{title: "Deploy v1.0", labels: []string{"feature"}, completed: true},
		{title: "Hotfix prod", labels: []string{"bug"}, completed: true},
	}
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add sample labels and tasks",
		Long: `Add sample labels and tasks. Labels that already exist are reused.

Examples:
  tally seed
  tally seed --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runSeed)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runSeed(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	labels := cliInstance.App.LabelService
	tasks := cliInstance.App.TaskService

	ids := make(map[string]int, len(seedLabels))
	for _, name := range seedLabels {
		label, err := labels.CreateLabel(ctx, models.CreateLabel{Name: name})
		var dup *models.DuplicateError
		switch {
		case errors.As(err, &dup):
			slog.Info("reusing existing label", "name", name, "id", dup.ID)
			ids[name] = dup.ID
		case err != nil:
			return nil, err
		default:
			ids[name] = label.ID
		}
	}

	created := make([]*models.Task, 0, len(seedTasks))
	for _, st := range seedTasks {
		labelIDs := make([]int, 0, len(st.labels))
		for _, name := range st.labels {
			labelIDs = append(labelIDs, ids[name])
		}

		task, err := tasks.CreateTask(ctx, models.CreateTask{Title: st.title, Labels: labelIDs})
		if err != nil {
			return nil, err
		}
		if st.completed {
			completed := true
			task, err = tasks.UpdateTask(ctx, task.ID, models.UpdateTask{Completed: &completed})
			if err != nil {
				return nil, err
			}
		}
		created = append(created, task)
	}

	return created, nil
}
