package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is idempotent; it runs on every start.
// task_labels keeps its implicit rowid, which records association insertion order.
const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS labels (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS task_labels (
	task_id INTEGER NOT NULL,
	label_id INTEGER NOT NULL,
	PRIMARY KEY (task_id, label_id),
	FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
	FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_task_labels_label ON task_labels(label_id);
`

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
