package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tally/internal/models"
)

// joinSelect yields one JoinRow per (task, label) pair, or one row with
// null label columns for a task without labels.
const joinSelect = `
	SELECT t.id AS task_id, t.title AS title, t.completed AS completed,
	       l.id AS label_id, l.name AS label_name
	FROM tasks t
	LEFT JOIN task_labels tl ON tl.task_id = t.id
	LEFT JOIN labels l ON l.id = tl.label_id`

// taskRow is the bare tasks table row
type taskRow struct {
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
}

// TaskRepo is the SQLite task store
type TaskRepo struct {
	db *sqlx.DB
}

// NewTaskRepo creates a task repository on db
func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// ============================================================================
// CRUD OPERATIONS
// ============================================================================

// CreateTask inserts a task, attaches its labels and returns the task as
// read back through the join.
func (r *TaskRepo) CreateTask(ctx context.Context, payload models.CreateTask) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, completed) VALUES (?, ?)`, payload.Title, false)
		if err != nil {
			return models.Unexpected("insert task", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return models.Unexpected("insert task", err)
		}

		if err := insertTaskLabels(ctx, tx, int(id), payload.Labels); err != nil {
			return err
		}

		task, err = getTask(ctx, tx, int(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task with its labels
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	return getTask(ctx, r.db, id)
}

// GetAllTasks retrieves all tasks with their labels, newest first
func (r *TaskRepo) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	var rows []JoinRow
	if err := r.db.SelectContext(ctx, &rows, joinSelect+` ORDER BY t.id DESC, tl.rowid ASC`); err != nil {
		return nil, models.Unexpected("list tasks", err)
	}
	return FoldRows(rows), nil
}

// UpdateTask applies a partial update. Absent fields keep their stored
// values; a non-nil Labels replaces the whole association set.
func (r *TaskRepo) UpdateTask(ctx context.Context, id int, payload models.UpdateTask) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current taskRow
		err := tx.GetContext(ctx, &current, `SELECT title, completed FROM tasks WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return &models.NotFoundError{ID: id}
		}
		if err != nil {
			return models.Unexpected("get task row", err)
		}

		if payload.Title != nil {
			current.Title = *payload.Title
		}
		if payload.Completed != nil {
			current.Completed = *payload.Completed
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET title = ?, completed = ? WHERE id = ?`,
			current.Title, current.Completed, id,
		); err != nil {
			return models.Unexpected("update task", err)
		}

		if payload.Labels != nil {
			if err := deleteTaskLabels(ctx, tx, id); err != nil {
				return err
			}
			if err := insertTaskLabels(ctx, tx, id, *payload.Labels); err != nil {
				return err
			}
		}

		task, err = getTask(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task's label associations and then the task itself
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := deleteTaskLabels(ctx, tx, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return models.Unexpected("delete task", err)
		}
		n, err := rowsAffected("delete task", result)
		if err != nil {
			return err
		}
		if n == 0 {
			return &models.NotFoundError{ID: id}
		}
		return nil
	})
}

// ============================================================================
// QUERY HELPERS
// ============================================================================

// getTask runs the join for a single task on q, which may be the db or a tx
func getTask(ctx context.Context, q sqlx.QueryerContext, id int) (*models.Task, error) {
	var rows []JoinRow
	if err := sqlx.SelectContext(ctx, q, &rows, joinSelect+` WHERE t.id = ? ORDER BY tl.rowid ASC`, id); err != nil {
		return nil, models.Unexpected("get task", err)
	}

	tasks := FoldRows(rows)
	if len(tasks) == 0 {
		return nil, &models.NotFoundError{ID: id}
	}
	return tasks[0], nil
}

// insertTaskLabels associates labels with a task in the given order.
// Ids without a matching label are skipped and repeated ids are ignored.
func insertTaskLabels(ctx context.Context, tx *sqlx.Tx, taskID int, labelIDs []int) error {
	for _, labelID := range labelIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_labels (task_id, label_id)
			 SELECT ?, id FROM labels WHERE id = ?`,
			taskID, labelID,
		); err != nil {
			return models.Unexpected("insert task label", err)
		}
	}
	return nil
}

// deleteTaskLabels removes all associations of a task; none is not an error
func deleteTaskLabels(ctx context.Context, tx *sqlx.Tx, taskID int) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_labels WHERE task_id = ?`, taskID); err != nil {
		return models.Unexpected("delete task labels", err)
	}
	return nil
}
