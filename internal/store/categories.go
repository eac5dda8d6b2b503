package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/johnwards/sampledata/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	Save(ctx context.Context, c *domain.Category) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, extension string, opts domain.ListOpts) (*domain.Page[*domain.Category], error)
	Count(ctx context.Context, extension string) (int, error)
}

// SQLiteCategoryStore implements CategoryStore backed by SQLite.
type SQLiteCategoryStore struct {
	db *sql.DB
}

// NewSQLiteCategoryStore creates a new SQLiteCategoryStore.
func NewSQLiteCategoryStore(db *sql.DB) *SQLiteCategoryStore {
	return &SQLiteCategoryStore{db: db}
}

const categoryColumns = `id, parent_id, level, extension, title, alias, COALESCE(description,''), access, published,
	language, COALESCE(params,'{}'), COALESCE(metakey,''), COALESCE(metadesc,''), COALESCE(xreference,''),
	created_user_id, created_at`

// Save validates c and inserts it, assigning c.ID. The level is derived from
// the parent, overriding whatever the caller passed.
func (s *SQLiteCategoryStore) Save(ctx context.Context, c *domain.Category) (int64, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return 0, invalid("Please provide a valid, non-blank title.")
	}
	if c.Extension == "" {
		return 0, invalid("Category extension is required.")
	}
	if c.ParentID == 0 {
		c.ParentID = domain.RootCategoryID
	}

	var parentLevel int
	err := s.db.QueryRowContext(ctx, `SELECT level FROM categories WHERE id = ?`, c.ParentID).Scan(&parentLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, invalid(fmt.Sprintf("Parent category %d not found.", c.ParentID))
	}
	if err != nil {
		return 0, fmt.Errorf("load parent category: %w", err)
	}

	c.Alias = makeAlias(c.Alias, c.Title)
	taken, err := exists(ctx, s.db,
		`SELECT 1 FROM categories WHERE extension = ? AND parent_id = ? AND alias = ?`,
		c.Extension, c.ParentID, c.Alias,
	)
	if err != nil {
		return 0, fmt.Errorf("check category alias: %w", err)
	}
	if taken {
		return 0, invalid("Another category with the same parent has the same alias.")
	}

	params, err := encodeJSON(c.Params)
	if err != nil {
		return 0, err
	}

	c.Level = parentLevel + 1
	c.Access = accessOrDefault(c.Access)
	c.Language = languageOrAll(c.Language)
	state := stateOrPublished(c.State)
	c.State = &state
	c.CreatedAt = now()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (parent_id, level, extension, title, alias, description, access, published,
			language, params, metakey, metadesc, xreference, created_user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ParentID, c.Level, c.Extension, c.Title, c.Alias, c.Description, c.Access, int(state),
		c.Language, params, c.Metakey, c.Metadesc, c.XReference, c.CreatedUserID, c.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	c.ID = id

	return id, nil
}

// Get retrieves a single category by ID.
func (s *SQLiteCategoryStore) Get(ctx context.Context, id int64) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// List returns a page of categories, optionally limited to one extension.
func (s *SQLiteCategoryStore) List(ctx context.Context, extension string, opts domain.ListOpts) (*domain.Page[*domain.Category], error) {
	limit := limitOrDefault(opts.Limit)

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id > ?`
	args := []any{opts.After}
	if extension != "" {
		query += ` AND extension = ?`
		args = append(args, extension)
	}
	query += ` ORDER BY id ASC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []*domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return page(cats, limit, func(c *domain.Category) int64 { return c.ID }), nil
}

// Count returns the number of categories, optionally limited to one extension.
func (s *SQLiteCategoryStore) Count(ctx context.Context, extension string) (int, error) {
	query := `SELECT COUNT(*) FROM categories WHERE level > 0`
	var args []any
	if extension != "" {
		query += ` AND extension = ?`
		args = append(args, extension)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (*domain.Category, error) {
	var c domain.Category
	var state int
	var params string
	if err := row.Scan(&c.ID, &c.ParentID, &c.Level, &c.Extension, &c.Title, &c.Alias, &c.Description,
		&c.Access, &state, &c.Language, &params, &c.Metakey, &c.Metadesc, &c.XReference,
		&c.CreatedUserID, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.State = domain.StatePtr(domain.State(state))
	c.Params = decodeJSON(params)
	return &c, nil
}
