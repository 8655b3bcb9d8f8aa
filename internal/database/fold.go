package database

import (
	"database/sql"

	"github.com/thenoetrevino/tally/internal/models"
)

// JoinRow is one row of tasks LEFT JOIN task_labels LEFT JOIN labels.
// A task without labels produces a single row with null label columns.
type JoinRow struct {
	TaskID    int            `db:"task_id"`
	Title     string         `db:"title"`
	Completed bool           `db:"completed"`
	LabelID   sql.NullInt64  `db:"label_id"`
	LabelName sql.NullString `db:"label_name"`
}

// FoldRows groups join rows into tasks with their labels attached.
//
// Tasks come out in the order their id first appears in rows, and each
// task's labels in the order their id first appears among that task's rows.
// Rows of one task need not be contiguous. A repeated (task, label) pair
// contributes the label once.
func FoldRows(rows []JoinRow) []*models.Task {
	tasks := make([]*models.Task, 0)
	byID := make(map[int]*models.Task)
	seen := make(map[int]map[int]struct{})

	for _, row := range rows {
		task, ok := byID[row.TaskID]
		if !ok {
			task = &models.Task{
				ID:        row.TaskID,
				Title:     row.Title,
				Completed: row.Completed,
				Labels:    []models.Label{},
			}
			byID[row.TaskID] = task
			seen[row.TaskID] = make(map[int]struct{})
			tasks = append(tasks, task)
		}

		if !row.LabelID.Valid {
			continue
		}

		labelID := int(row.LabelID.Int64)
		if _, dup := seen[row.TaskID][labelID]; dup {
			continue
		}
		seen[row.TaskID][labelID] = struct{}{}
		task.Labels = append(task.Labels, models.Label{
			ID:   labelID,
			Name: row.LabelName.String,
		})
	}

	return tasks
}
