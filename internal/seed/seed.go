package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// ts is the creation timestamp stamped on every seeded row.
const ts = "2024-01-01 00:00:00"

// Seed inserts the reference rows every content model needs before content can
// be saved: users, components, and the category and menu tree roots. It is
// idempotent; existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := Users(ctx, db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := Components(ctx, db); err != nil {
		return fmt.Errorf("seed components: %w", err)
	}
	if err := Roots(ctx, db); err != nil {
		return fmt.Errorf("seed roots: %w", err)
	}
	return nil
}
