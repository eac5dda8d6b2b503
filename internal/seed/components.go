package seed

import (
	"context"
	"database/sql"
	"fmt"
)

var defaultComponents = []struct {
	element string
	name    string
}{
	{"com_content", "Articles"},
	{"com_categories", "Categories"},
	{"com_fields", "Fields"},
	{"com_menus", "Menus"},
	{"com_users", "Users"},
}

// Components registers the built-in components menu items can route to.
func Components(ctx context.Context, db *sql.DB) error {
	for _, c := range defaultComponents {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO extensions (element, name, enabled, created_at) VALUES (?, ?, TRUE, ?)`,
			c.element, c.name, ts,
		); err != nil {
			return fmt.Errorf("insert component %s: %w", c.element, err)
		}
	}
	return nil
}
