package memstore

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"sync"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
)

// LabelLookup resolves label ids for the task store
type LabelLookup interface {
	LookupLabel(id int) (models.Label, bool)
}

// taskRecord is the stored form of a task; labels are kept as ids and
// resolved against the label store on every read
type taskRecord struct {
	id        int
	title     string
	completed bool
	labelIDs  []int
}

// TaskStore keeps tasks in a map guarded by a read/write lock.
// Reads are built as join rows and folded the same way as the SQLite join.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int]*taskRecord
	nextID int
	labels LabelLookup
}

// NewTaskStore creates an empty task store resolving labels through labels
func NewTaskStore(labels LabelLookup) *TaskStore {
	return &TaskStore{
		tasks:  make(map[int]*taskRecord),
		nextID: 1,
		labels: labels,
	}
}

// CreateTask adds a task with completed=false and the known labels among payload.Labels
func (s *TaskStore) CreateTask(ctx context.Context, payload models.CreateTask) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.Unexpected("create task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &taskRecord{
		id:       s.nextID,
		title:    payload.Title,
		labelIDs: s.knownLabelIDs(payload.Labels),
	}
	s.tasks[rec.id] = rec
	s.nextID++

	return s.view(rec), nil
}

// GetTask returns a task with its labels
func (s *TaskStore) GetTask(ctx context.Context, id int) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.Unexpected("get task", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tasks[id]
	if !ok {
		return nil, &models.NotFoundError{ID: id}
	}
	return s.view(rec), nil
}

// GetAllTasks returns all tasks, newest first
func (s *TaskStore) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.Unexpected("list tasks", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b int) int { return cmp.Compare(b, a) })

	var rows []database.JoinRow
	for _, id := range ids {
		rows = append(rows, s.joinRows(s.tasks[id])...)
	}
	return database.FoldRows(rows), nil
}

// UpdateTask applies a partial update under the write lock
func (s *TaskStore) UpdateTask(ctx context.Context, id int, payload models.UpdateTask) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.Unexpected("update task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok {
		return nil, &models.NotFoundError{ID: id}
	}

	if payload.Title != nil {
		rec.title = *payload.Title
	}
	if payload.Completed != nil {
		rec.completed = *payload.Completed
	}
	if payload.Labels != nil {
		rec.labelIDs = s.knownLabelIDs(*payload.Labels)
	}

	return s.view(rec), nil
}

// DeleteTask removes a task together with its label associations
func (s *TaskStore) DeleteTask(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return models.Unexpected("delete task", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return &models.NotFoundError{ID: id}
	}
	delete(s.tasks, id)
	return nil
}

// knownLabelIDs keeps the first occurrence of each id that names an existing label
func (s *TaskStore) knownLabelIDs(ids []int) []int {
	known := make([]int, 0, len(ids))
	for _, id := range ids {
		if slices.Contains(known, id) {
			continue
		}
		if _, ok := s.labels.LookupLabel(id); ok {
			known = append(known, id)
		}
	}
	return known
}

// joinRows renders a record the way the SQL left join would
func (s *TaskStore) joinRows(rec *taskRecord) []database.JoinRow {
	base := database.JoinRow{TaskID: rec.id, Title: rec.title, Completed: rec.completed}

	var rows []database.JoinRow
	for _, id := range rec.labelIDs {
		label, ok := s.labels.LookupLabel(id)
		if !ok {
			continue
		}
		row := base
		row.LabelID = sql.NullInt64{Int64: int64(label.ID), Valid: true}
		row.LabelName = sql.NullString{String: label.Name, Valid: true}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, base)
	}
	return rows
}

// view folds a single record into a task. Callers hold the lock.
func (s *TaskStore) view(rec *taskRecord) *models.Task {
	return database.FoldRows(s.joinRows(rec))[0]
}
