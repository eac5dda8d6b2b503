package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/johnwards/sampledata/internal/domain"
)

// MenuStore defines the interface for menu persistence.
type MenuStore interface {
	Save(ctx context.Context, m *domain.Menu) (int64, error)
	Get(ctx context.Context, menuType string) (*domain.Menu, error)
	List(ctx context.Context, opts domain.ListOpts) (*domain.Page[*domain.Menu], error)
}

// MenuItemStore defines the interface for menu item persistence.
type MenuItemStore interface {
	Save(ctx context.Context, item *domain.MenuItem) (int64, error)
	List(ctx context.Context, menuType string, opts domain.ListOpts) (*domain.Page[*domain.MenuItem], error)
	Count(ctx context.Context, menuType string) (int, error)
}

// SQLiteMenuStore implements MenuStore backed by SQLite.
type SQLiteMenuStore struct {
	db *sql.DB
}

// NewSQLiteMenuStore creates a new SQLiteMenuStore.
func NewSQLiteMenuStore(db *sql.DB) *SQLiteMenuStore {
	return &SQLiteMenuStore{db: db}
}

// Save validates m and inserts it, assigning m.ID.
func (s *SQLiteMenuStore) Save(ctx context.Context, m *domain.Menu) (int64, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return 0, invalid("Please enter a menu title.")
	}
	if m.MenuType == "" {
		return 0, invalid("Please enter a menu type.")
	}
	if len(m.MenuType) > domain.MaxMenuTypeLength {
		return 0, invalid(fmt.Sprintf("Menu type must be %d characters or fewer.", domain.MaxMenuTypeLength))
	}

	taken, err := exists(ctx, s.db, `SELECT 1 FROM menu_types WHERE menutype = ?`, m.MenuType)
	if err != nil {
		return 0, fmt.Errorf("check menutype: %w", err)
	}
	if taken {
		return 0, invalid("The menu type already exists.")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO menu_types (menutype, title, description, created_at) VALUES (?, ?, ?, ?)`,
		m.MenuType, m.Title, m.Description, now(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert menu: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	m.ID = id

	return id, nil
}

// Get retrieves a menu by its menutype.
func (s *SQLiteMenuStore) Get(ctx context.Context, menuType string) (*domain.Menu, error) {
	var m domain.Menu
	err := s.db.QueryRowContext(ctx,
		`SELECT id, menutype, title, COALESCE(description,'') FROM menu_types WHERE menutype = ?`, menuType,
	).Scan(&m.ID, &m.MenuType, &m.Title, &m.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &m, nil
}

// List returns a page of menus.
func (s *SQLiteMenuStore) List(ctx context.Context, opts domain.ListOpts) (*domain.Page[*domain.Menu], error) {
	limit := limitOrDefault(opts.Limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, menutype, title, COALESCE(description,'') FROM menu_types
		 WHERE id > ? ORDER BY id ASC LIMIT ?`,
		opts.After, limit+1,
	)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var menus []*domain.Menu
	for rows.Next() {
		var m domain.Menu
		if err := rows.Scan(&m.ID, &m.MenuType, &m.Title, &m.Description); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		menus = append(menus, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return page(menus, limit, func(m *domain.Menu) int64 { return m.ID }), nil
}

// SQLiteMenuItemStore implements MenuItemStore backed by SQLite.
type SQLiteMenuItemStore struct {
	db *sql.DB
}

// NewSQLiteMenuItemStore creates a new SQLiteMenuItemStore.
func NewSQLiteMenuItemStore(db *sql.DB) *SQLiteMenuItemStore {
	return &SQLiteMenuItemStore{db: db}
}

const menuItemColumns = `id, menutype, title, alias, link, type, component_id, parent_id, level, browser_nav,
	client_id, home, template_style_id, published, access, language, COALESCE(params,'{}'), created_user_id, created_at`

// Save validates item and inserts it, assigning item.ID. The level is derived
// from the parent item.
func (s *SQLiteMenuItemStore) Save(ctx context.Context, item *domain.MenuItem) (int64, error) {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return 0, invalid("Please enter a menu item title.")
	}
	if item.Link == "" {
		return 0, invalid("Please enter a link.")
	}
	if item.Type == "" {
		return 0, invalid("Please select a menu item type.")
	}

	ok, err := exists(ctx, s.db, `SELECT 1 FROM menu_types WHERE menutype = ?`, item.MenuType)
	if err != nil {
		return 0, fmt.Errorf("check menutype: %w", err)
	}
	if !ok {
		return 0, invalid(fmt.Sprintf("Menu type %q not found.", item.MenuType))
	}

	if item.Type == "component" {
		ok, err := exists(ctx, s.db, `SELECT 1 FROM extensions WHERE id = ? AND enabled = TRUE`, item.ComponentID)
		if err != nil {
			return 0, fmt.Errorf("check component: %w", err)
		}
		if !ok {
			return 0, invalid(fmt.Sprintf("Component %d not found or disabled.", item.ComponentID))
		}
	}

	if item.ParentID == 0 {
		item.ParentID = domain.RootMenuItemID
	}
	var parentLevel int
	err = s.db.QueryRowContext(ctx, `SELECT level FROM menu WHERE id = ?`, item.ParentID).Scan(&parentLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, invalid(fmt.Sprintf("Parent menu item %d not found.", item.ParentID))
	}
	if err != nil {
		return 0, fmt.Errorf("load parent menu item: %w", err)
	}

	item.Alias = makeAlias(item.Alias, item.Title)
	item.Language = languageOrAll(item.Language)
	taken, err := exists(ctx, s.db,
		`SELECT 1 FROM menu WHERE client_id = ? AND parent_id = ? AND alias = ? AND language = ?`,
		item.ClientID, item.ParentID, item.Alias, item.Language,
	)
	if err != nil {
		return 0, fmt.Errorf("check menu item alias: %w", err)
	}
	if taken {
		return 0, invalid("Another menu item with the same parent has the same alias.")
	}

	params, err := encodeJSON(item.Params)
	if err != nil {
		return 0, err
	}

	item.Level = parentLevel + 1
	item.Access = accessOrDefault(item.Access)
	state := stateOrPublished(item.State)
	item.State = &state
	item.CreatedAt = now()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO menu (menutype, title, alias, link, type, component_id, parent_id, level, browser_nav,
			client_id, home, template_style_id, published, access, language, params, created_user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.MenuType, item.Title, item.Alias, item.Link, item.Type, item.ComponentID, item.ParentID, item.Level,
		item.BrowserNav, item.ClientID, item.Home, item.TemplateStyleID, int(state), item.Access, item.Language,
		params, item.CreatedUserID, item.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	item.ID = id

	return id, nil
}

// List returns a page of menu items, optionally limited to one menu. The tree
// root is never listed.
func (s *SQLiteMenuItemStore) List(ctx context.Context, menuType string, opts domain.ListOpts) (*domain.Page[*domain.MenuItem], error) {
	limit := limitOrDefault(opts.Limit)

	query := `SELECT ` + menuItemColumns + ` FROM menu WHERE level > 0 AND id > ?`
	args := []any{opts.After}
	if menuType != "" {
		query += ` AND menutype = ?`
		args = append(args, menuType)
	}
	query += ` ORDER BY id ASC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		var state int
		var params string
		if err := rows.Scan(&it.ID, &it.MenuType, &it.Title, &it.Alias, &it.Link, &it.Type, &it.ComponentID,
			&it.ParentID, &it.Level, &it.BrowserNav, &it.ClientID, &it.Home, &it.TemplateStyleID, &state,
			&it.Access, &it.Language, &params, &it.CreatedUserID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		it.State = domain.StatePtr(domain.State(state))
		it.Params = decodeJSON(params)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return page(items, limit, func(it *domain.MenuItem) int64 { return it.ID }), nil
}

// Count returns the number of menu items, optionally limited to one menu.
func (s *SQLiteMenuItemStore) Count(ctx context.Context, menuType string) (int, error) {
	query := `SELECT COUNT(*) FROM menu WHERE level > 0`
	var args []any
	if menuType != "" {
		query += ` AND menutype = ?`
		args = append(args, menuType)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return n, nil
}
