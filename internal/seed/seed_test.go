package seed_test

import (
	"context"
	"testing"

	"github.com/johnwards/sampledata/internal/database"
	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/seed"
	"github.com/johnwards/sampledata/internal/testhelpers"
)

func TestSeedIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := seed.Seed(ctx, db); err != nil {
			t.Fatalf("seed (run %d): %v", i+1, err)
		}
	}

	counts := map[string]int{
		"users":      2,
		"extensions": 5,
		"categories": 2,
		"menu":       1,
	}
	for table, want := range counts {
		var got int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s rows = %d, want %d", table, got, want)
		}
	}
}

func TestSeedRoots(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var level int
	var extension string
	if err := db.QueryRow("SELECT level, extension FROM categories WHERE id = ?", domain.RootCategoryID).Scan(&level, &extension); err != nil {
		t.Fatalf("root category: %v", err)
	}
	if level != 0 || extension != "system" {
		t.Errorf("root category level=%d extension=%q, want 0 and system", level, extension)
	}

	var alias string
	if err := db.QueryRow("SELECT alias FROM menu WHERE id = ?", domain.RootMenuItemID).Scan(&alias); err != nil {
		t.Fatalf("root menu item: %v", err)
	}
	if alias != "root" {
		t.Errorf("root menu alias = %q, want root", alias)
	}

	var username string
	if err := db.QueryRow("SELECT username FROM users WHERE id = 1").Scan(&username); err != nil {
		t.Fatalf("first user: %v", err)
	}
	if username != "admin" {
		t.Errorf("first user = %q, want admin", username)
	}
}
