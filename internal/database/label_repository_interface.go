package database

import (
	"context"

	"github.com/thenoetrevino/tally/internal/models"
)

// LabelReader defines read operations for labels.
type LabelReader interface {
	// GetAllLabels returns every label ordered by ascending id.
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
}

// LabelWriter defines write operations for labels.
type LabelWriter interface {
	// CreateLabel fails with *models.DuplicateError when the exact name exists.
	CreateLabel(ctx context.Context, name string) (*models.Label, error)
	// DeleteLabel fails with *models.NotFoundError when no such label exists.
	DeleteLabel(ctx context.Context, id int) error
}

// LabelRepository combines all label-related operations.
type LabelRepository interface {
	LabelReader
	LabelWriter
}
