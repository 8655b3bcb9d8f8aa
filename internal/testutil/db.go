package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
)

// SetupTestRepo creates an in-memory SQLite repository with the full schema.
// It is closed when the test ends.
func SetupTestRepo(t testing.TB) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// CreateTestLabel creates a label and returns it
func CreateTestLabel(t testing.TB, repo database.LabelRepository, name string) *models.Label {
	t.Helper()
	label, err := repo.CreateLabel(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}
	return label
}

// CreateTestTask creates a task carrying labelIDs and returns it
func CreateTestTask(t testing.TB, repo database.TaskRepository, title string, labelIDs ...int) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), models.CreateTask{Title: title, Labels: labelIDs})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}
