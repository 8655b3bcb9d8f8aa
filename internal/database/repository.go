package database

import (
	"github.com/jmoiron/sqlx"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*LabelRepo
	db *sqlx.DB
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		TaskRepo:  NewTaskRepo(db),
		LabelRepo: NewLabelRepo(db),
		db:        db,
	}
}

// Close closes the underlying database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
