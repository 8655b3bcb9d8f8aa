package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tally/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
// Errors returned by fn are passed through unchanged.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Unexpected("begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return models.Unexpected("commit transaction", err)
	}

	return nil
}

// rowsAffected reports how many rows an exec touched
func rowsAffected(op string, result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, models.Unexpected(op, err)
	}
	return n, nil
}
