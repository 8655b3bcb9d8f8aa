package label

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/validation"
)

// Service defines all label-related business operations
type Service interface {
	// Read operations
	ListLabels(ctx context.Context) ([]*models.Label, error)

	// Write operations
	CreateLabel(ctx context.Context, req models.CreateLabel) (*models.Label, error)
	DeleteLabel(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	repo   database.LabelRepository
	logger *slog.Logger
}

// NewService creates a new label service
func NewService(repo database.LabelRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("service", "label"),
	}
}

// ListLabels retrieves all labels ordered by id
func (s *service) ListLabels(ctx context.Context) ([]*models.Label, error) {
	labels, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

// CreateLabel creates a new label with validation
func (s *service) CreateLabel(ctx context.Context, req models.CreateLabel) (*models.Label, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	label, err := s.repo.CreateLabel(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	s.logger.Info("label created", "label_id", label.ID)
	return label, nil
}

// DeleteLabel deletes a label; tasks carrying it lose the association
func (s *service) DeleteLabel(ctx context.Context, id int) error {
	if err := s.repo.DeleteLabel(ctx, id); err != nil {
		return fmt.Errorf("failed to delete label %d: %w", id, err)
	}

	s.logger.Info("label deleted", "label_id", id)
	return nil
}
