package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/sampledata/internal/domain"
)

// Roots inserts the category tree root and the menu tree root under their
// fixed ids, plus an "Uncategorised" content category.
func Roots(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (id, parent_id, level, extension, title, alias, created_at)
		 VALUES (?, 0, 0, 'system', 'ROOT', 'root', ?)`,
		domain.RootCategoryID, ts,
	); err != nil {
		return fmt.Errorf("insert root category: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (parent_id, level, extension, title, alias, created_user_id, created_at)
		 VALUES (?, 1, 'com_content', 'Uncategorised', 'uncategorised', 1, ?)`,
		domain.RootCategoryID, ts,
	); err != nil {
		return fmt.Errorf("insert uncategorised category: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO menu (id, menutype, title, alias, link, type, parent_id, level, created_at)
		 VALUES (?, '', 'Menu_Item_Root', 'root', '', '', 0, 0, ?)`,
		domain.RootMenuItemID, ts,
	); err != nil {
		return fmt.Errorf("insert root menu item: %w", err)
	}

	return nil
}
