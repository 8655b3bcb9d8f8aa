package memstore

import (
	"github.com/thenoetrevino/tally/internal/database"
)

// Store composes the in-memory task and label stores
type Store struct {
	*TaskStore
	*LabelStore
}

var _ database.DataStore = (*Store)(nil)

// New creates an empty in-memory data store
func New() *Store {
	labels := NewLabelStore()
	return &Store{
		TaskStore:  NewTaskStore(labels),
		LabelStore: labels,
	}
}
