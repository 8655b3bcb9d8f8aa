package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/testutil"
	"github.com/thenoetrevino/tally/internal/validation"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// countingRepo records writes so tests can assert a rejected payload wrote nothing
type countingRepo struct {
	database.TaskRepository
	writes int
}

func (r *countingRepo) CreateTask(ctx context.Context, payload models.CreateTask) (*models.Task, error) {
	r.writes++
	return r.TaskRepository.CreateTask(ctx, payload)
}

func (r *countingRepo) UpdateTask(ctx context.Context, id int, payload models.UpdateTask) (*models.Task, error) {
	r.writes++
	return r.TaskRepository.UpdateTask(ctx, id, payload)
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateTask(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestRepo(t)
	label := testutil.CreateTestLabel(t, repo, "home")
	svc := NewService(repo, discard)

	task, err := svc.CreateTask(context.Background(), models.CreateTask{
		Title:  "Test Task",
		Labels: []int{label.ID},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == 0 {
		t.Error("Expected task ID to be set")
	}
	if task.Title != "Test Task" {
		t.Errorf("Expected title 'Test Task', got '%s'", task.Title)
	}
	if task.Completed {
		t.Error("Expected new task to be incomplete")
	}
	if len(task.Labels) != 1 || task.Labels[0].Name != "home" {
		t.Errorf("Expected label 'home', got %v", task.Labels)
	}
}

func TestCreateTask_ValidationWritesNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
	}{
		{name: "empty title", title: ""},
		{name: "title too long", title: strings.Repeat("a", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &countingRepo{TaskRepository: testutil.SetupTestRepo(t)}
			svc := NewService(repo, discard)

			_, err := svc.CreateTask(context.Background(), models.CreateTask{Title: tt.title})

			if !errors.Is(err, validation.ErrValidation) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if repo.writes != 0 {
				t.Errorf("Expected no store writes, got %d", repo.writes)
			}
		})
	}
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepo(t), discard)

	_, err := svc.GetTask(context.Background(), 99)

	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.ID != 99 {
		t.Errorf("Expected id 99, got %d", nf.ID)
	}
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestRepo(t)
	first := testutil.CreateTestTask(t, repo, "first")
	second := testutil.CreateTestTask(t, repo, "second")
	svc := NewService(repo, discard)

	tasks, err := svc.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Errorf("Expected newest first, got %d then %d", tasks[0].ID, tasks[1].ID)
	}
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestRepo(t)
	a := testutil.CreateTestLabel(t, repo, "a")
	b := testutil.CreateTestLabel(t, repo, "b")
	task := testutil.CreateTestTask(t, repo, "old", a.ID)
	svc := NewService(repo, discard)

	got, err := svc.UpdateTask(context.Background(), task.ID, models.UpdateTask{
		Title:     ptr("new"),
		Completed: ptr(true),
		Labels:    &[]int{b.ID},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got.Title != "new" || !got.Completed {
		t.Errorf("Expected updated title and completed, got %+v", got)
	}
	if len(got.Labels) != 1 || got.Labels[0].ID != b.ID {
		t.Errorf("Expected labels replaced with %d, got %v", b.ID, got.Labels)
	}
}

func TestUpdateTask_EmptyTitleRejected(t *testing.T) {
	t.Parallel()

	base := testutil.SetupTestRepo(t)
	task := testutil.CreateTestTask(t, base, "keep")
	repo := &countingRepo{TaskRepository: base}
	svc := NewService(repo, discard)

	_, err := svc.UpdateTask(context.Background(), task.ID, models.UpdateTask{Title: ptr("")})

	if !errors.Is(err, validation.ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if repo.writes != 0 {
		t.Errorf("Expected no store writes, got %d", repo.writes)
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestRepo(t)
	task := testutil.CreateTestTask(t, repo, "bye")
	svc := NewService(repo, discard)

	if err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.DeleteTask(context.Background(), task.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found on second delete, got %v", err)
	}
}
