package database

// DataStore defines the unified interface for all data operations.
// It is implemented by the SQLite Repository and by memstore.Store;
// callers depend only on this interface (or its smaller parts).
type DataStore interface {
	TaskRepository
	LabelRepository
}
