package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestLabel(t *testing.T, db *sqlx.DB, name string) int {
	t.Helper()
	result, err := db.Exec("INSERT INTO labels (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

func countRows(t *testing.T, db *sqlx.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.Get(&n, query, args...); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
