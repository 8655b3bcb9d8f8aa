package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/validation"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req models.CreateTask) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, req models.UpdateTask) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	repo   database.TaskRepository
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo database.TaskRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("service", "task"),
	}
}

// GetTask retrieves a single task with its labels
func (s *service) GetTask(ctx context.Context, id int) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// ListTasks retrieves every task, newest first
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask validates the request and stores the task
func (s *service) CreateTask(ctx context.Context, req models.CreateTask) (*models.Task, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "labels", len(task.Labels))
	return task, nil
}

// UpdateTask validates the partial update and applies it
func (s *service) UpdateTask(ctx context.Context, id int, req models.UpdateTask) (*models.Task, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	s.logger.Info("task updated", "task_id", id, "labels_replaced", req.Labels != nil)
	return task, nil
}

// DeleteTask removes a task and its label associations
func (s *service) DeleteTask(ctx context.Context, id int) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	s.logger.Info("task deleted", "task_id", id)
	return nil
}
