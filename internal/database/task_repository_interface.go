package database

import (
	"context"

	"github.com/thenoetrevino/tally/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	// GetTask fails with *models.NotFoundError when no task has the id.
	GetTask(ctx context.Context, id int) (*models.Task, error)
	// GetAllTasks returns every task, newest (highest id) first.
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
// Each call is applied atomically: the task row and its label
// associations change together or not at all.
type TaskWriter interface {
	CreateTask(ctx context.Context, payload models.CreateTask) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, payload models.UpdateTask) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
