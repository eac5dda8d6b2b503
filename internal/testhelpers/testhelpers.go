// Package testhelpers builds in-memory content models for tests.
package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/johnwards/sampledata/internal/database"
	"github.com/johnwards/sampledata/internal/seed"
	"github.com/johnwards/sampledata/internal/store"
)

// NewTestDB returns an empty in-memory database, closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.MemoryDSN)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// NewSeededStore returns a store over a migrated database holding the seeded
// users, components and tree roots.
func NewSeededStore(t *testing.T) *store.Store {
	t.Helper()

	db := NewTestDB(t)
	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return store.New(db)
}
