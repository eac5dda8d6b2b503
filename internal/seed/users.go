package seed

import (
	"context"
	"database/sql"
	"fmt"
)

type userDef struct {
	name     string
	username string
	email    string
}

// The first user becomes id 1, the default acting identity.
var defaultUsers = []userDef{
	{name: "Super User", username: "admin", email: "admin@example.com"},
	{name: "Content Editor", username: "editor", email: "editor@example.com"},
}

// Users inserts default accounts if none exist yet.
func Users(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, u := range defaultUsers {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (name, username, email, created_at) VALUES (?, ?, ?, ?)`,
			u.name, u.username, u.email, ts,
		); err != nil {
			return fmt.Errorf("insert user %s: %w", u.username, err)
		}
	}

	return nil
}
