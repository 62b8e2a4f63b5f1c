// Package testutil provides the in-memory test store and record fixtures.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/aqibjaved/showcase/internal/db"
)

// NewTestDB opens a migrated in-memory catalog store that is closed when
// the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// NewTestUoW wraps a test store in a UnitOfWork.
func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}
