// Package memstore provides in-memory implementations of the task and label
// repositories. They honor the same contract as the SQLite repositories and
// are safe for concurrent use; each store owns its map and lock.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/tally/internal/models"
)

// LabelStore keeps labels in a map guarded by a read/write lock
type LabelStore struct {
	mu     sync.RWMutex
	labels map[int]models.Label
	nextID int
}

// NewLabelStore creates a label store preloaded with labels.
// New ids continue after the highest preloaded id.
func NewLabelStore(labels ...models.Label) *LabelStore {
	s := &LabelStore{
		labels: make(map[int]models.Label, len(labels)),
		nextID: 1,
	}
	for _, l := range labels {
		s.labels[l.ID] = l
		if l.ID >= s.nextID {
			s.nextID = l.ID + 1
		}
	}
	return s
}

// CreateLabel adds a label unless one with the same name already exists
func (s *LabelStore) CreateLabel(ctx context.Context, name string) (*models.Label, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.Unexpected("create label", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.findByName(name); ok {
		return nil, &models.DuplicateError{ID: id}
	}

	label := models.Label{ID: s.nextID, Name: name}
	s.labels[label.ID] = label
	s.nextID++

	return &label, nil
}

// GetAllLabels returns all labels ordered by id
func (s *LabelStore) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.Unexpected("list labels", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make([]*models.Label, 0, len(s.labels))
	for _, l := range s.labels {
		label := l
		labels = append(labels, &label)
	}
	slices.SortFunc(labels, func(a, b *models.Label) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return labels, nil
}

// DeleteLabel removes a label
func (s *LabelStore) DeleteLabel(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return models.Unexpected("delete label", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.labels[id]; !ok {
		return &models.NotFoundError{ID: id}
	}
	delete(s.labels, id)
	return nil
}

// LookupLabel returns the label with the given id, if it exists
func (s *LabelStore) LookupLabel(id int) (models.Label, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.labels[id]
	return l, ok
}

// findByName returns the lowest id holding name. Callers hold the lock.
func (s *LabelStore) findByName(name string) (int, bool) {
	found := 0
	for id, l := range s.labels {
		if l.Name == name && (found == 0 || id < found) {
			found = id
		}
	}
	return found, found != 0
}
