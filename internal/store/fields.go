package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/johnwards/sampledata/internal/database"
	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/urlsafe"
)

// FieldStore defines the interface for custom field persistence.
type FieldStore interface {
	Save(ctx context.Context, f *domain.Field) (int64, error)
	List(ctx context.Context, fieldContext string, opts domain.ListOpts) (*domain.Page[*domain.Field], error)
	Count(ctx context.Context, fieldContext string) (int, error)
}

// SQLiteFieldStore implements FieldStore backed by SQLite.
type SQLiteFieldStore struct {
	db *sql.DB
}

// NewSQLiteFieldStore creates a new SQLiteFieldStore.
func NewSQLiteFieldStore(db *sql.DB) *SQLiteFieldStore {
	return &SQLiteFieldStore{db: db}
}

// Save validates f and inserts it with its category assignments, assigning
// f.ID. The name is normalised to a slug and written back to f.Name.
func (s *SQLiteFieldStore) Save(ctx context.Context, f *domain.Field) (int64, error) {
	f.Label = strings.TrimSpace(f.Label)
	if f.Label == "" {
		return 0, invalid("Please enter a label.")
	}
	if f.Title == "" {
		f.Title = f.Label
	}
	if f.Type == "" {
		return 0, invalid("Please select a field type.")
	}
	if f.Context == "" {
		return 0, invalid("Field context is required.")
	}
	f.Name = urlsafe.String(strings.ReplaceAll(f.Name, ",", "-"))
	if f.Name == "" {
		return 0, invalid("Please enter a name.")
	}

	params, err := encodeJSON(f.Params)
	if err != nil {
		return 0, err
	}
	fieldParams, err := encodeJSON(f.FieldParams)
	if err != nil {
		return 0, err
	}

	f.Access = accessOrDefault(f.Access)
	f.Language = languageOrAll(f.Language)
	state := stateOrPublished(f.State)
	f.State = &state
	f.CreatedAt = now()

	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		taken, err := exists(ctx, tx, `SELECT 1 FROM fields WHERE context = ? AND name = ?`, f.Context, f.Name)
		if err != nil {
			return fmt.Errorf("check field name: %w", err)
		}
		if taken {
			return invalid("Another field has the same name (remember it may be a trashed item).")
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO fields (context, name, label, title, type, group_id, state, access, language,
				description, params, fieldparams, created_user_id, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.Context, f.Name, f.Label, f.Title, f.Type, f.GroupID, int(state), f.Access, f.Language,
			f.Description, params, fieldParams, f.CreatedUserID, f.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert field: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		f.ID = id

		for _, catID := range f.AssignedCatIDs {
			ok, err := exists(ctx, tx, `SELECT 1 FROM categories WHERE id = ?`, catID)
			if err != nil {
				return fmt.Errorf("check category: %w", err)
			}
			if !ok {
				return invalid(fmt.Sprintf("Assigned category %d not found.", catID))
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO fields_categories (field_id, category_id) VALUES (?, ?)`, id, catID,
			); err != nil {
				return fmt.Errorf("assign category %d: %w", catID, err)
			}
		}
		return nil
	})
	if err != nil {
		f.ID = 0
		return 0, err
	}

	return f.ID, nil
}

// List returns a page of fields, optionally limited to one context. The
// assigned category ids are loaded after the page is read.
func (s *SQLiteFieldStore) List(ctx context.Context, fieldContext string, opts domain.ListOpts) (*domain.Page[*domain.Field], error) {
	limit := limitOrDefault(opts.Limit)

	query := `SELECT id, context, name, label, title, type, group_id, state, access, language,
		COALESCE(description,''), COALESCE(params,'{}'), COALESCE(fieldparams,'{}'), created_user_id, created_at
		FROM fields WHERE id > ?`
	args := []any{opts.After}
	if fieldContext != "" {
		query += ` AND context = ?`
		args = append(args, fieldContext)
	}
	query += ` ORDER BY id ASC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	var fields []*domain.Field
	for rows.Next() {
		var f domain.Field
		var state int
		var params, fieldParams string
		if err := rows.Scan(&f.ID, &f.Context, &f.Name, &f.Label, &f.Title, &f.Type, &f.GroupID, &state,
			&f.Access, &f.Language, &f.Description, &params, &fieldParams, &f.CreatedUserID, &f.CreatedAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan field: %w", err)
		}
		f.State = domain.StatePtr(domain.State(state))
		f.Params = decodeJSON(params)
		f.FieldParams = decodeJSON(fieldParams)
		fields = append(fields, &f)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	_ = rows.Close()

	p := page(fields, limit, func(f *domain.Field) int64 { return f.ID })

	// Load assignments in a separate pass to avoid holding the rows cursor
	// (SQLite MaxOpenConns=1).
	for _, f := range p.Results {
		ids, err := s.assignedCategories(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		f.AssignedCatIDs = ids
	}
	return p, nil
}

// Count returns the number of fields, optionally limited to one context.
func (s *SQLiteFieldStore) Count(ctx context.Context, fieldContext string) (int, error) {
	query := `SELECT COUNT(*) FROM fields`
	var args []any
	if fieldContext != "" {
		query += ` WHERE context = ?`
		args = append(args, fieldContext)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count fields: %w", err)
	}
	return n, nil
}

func (s *SQLiteFieldStore) assignedCategories(ctx context.Context, fieldID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category_id FROM fields_categories WHERE field_id = ? ORDER BY category_id`, fieldID,
	)
	if err != nil {
		return nil, fmt.Errorf("query field categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan field category: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
