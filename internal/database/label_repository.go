package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tally/internal/models"
)

// LabelRepo is the SQLite label store
type LabelRepo struct {
	db *sqlx.DB
}

// NewLabelRepo creates a label repository on db
func NewLabelRepo(db *sqlx.DB) *LabelRepo {
	return &LabelRepo{db: db}
}

// CreateLabel inserts a label unless one with the same name already exists.
// The name check and the insert share a transaction but there is no unique
// constraint behind them.
func (r *LabelRepo) CreateLabel(ctx context.Context, name string) (*models.Label, error) {
	var label *models.Label
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var existingID int
		err := tx.GetContext(ctx, &existingID,
			`SELECT id FROM labels WHERE name = ? ORDER BY id LIMIT 1`, name)
		switch {
		case err == nil:
			return &models.DuplicateError{ID: existingID}
		case !errors.Is(err, sql.ErrNoRows):
			return models.Unexpected("find label by name", err)
		}

		result, err := tx.ExecContext(ctx, `INSERT INTO labels (name) VALUES (?)`, name)
		if err != nil {
			return models.Unexpected("insert label", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return models.Unexpected("insert label", err)
		}

		label = &models.Label{ID: int(id), Name: name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return label, nil
}

// GetAllLabels retrieves all labels ordered by id
func (r *LabelRepo) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	labels := []*models.Label{}
	if err := r.db.SelectContext(ctx, &labels, `SELECT id, name FROM labels ORDER BY id ASC`); err != nil {
		return nil, models.Unexpected("list labels", err)
	}
	return labels, nil
}

// DeleteLabel removes a label (cascade removes task associations)
func (r *LabelRepo) DeleteLabel(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return models.Unexpected("delete label", err)
	}
	n, err := rowsAffected("delete label", result)
	if err != nil {
		return err
	}
	if n == 0 {
		return &models.NotFoundError{ID: id}
	}
	return nil
}
