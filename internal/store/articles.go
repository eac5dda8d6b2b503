package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/johnwards/sampledata/internal/database"
	"github.com/johnwards/sampledata/internal/domain"
)

// ArticleStore defines the interface for article persistence.
type ArticleStore interface {
	Save(ctx context.Context, a *domain.Article) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, catID int64, opts domain.ListOpts) (*domain.Page[*domain.Article], error)
	Count(ctx context.Context, catID int64) (int, error)
	FieldValues(ctx context.Context, id int64) (map[string]string, error)
}

// SQLiteArticleStore implements ArticleStore backed by SQLite.
type SQLiteArticleStore struct {
	db *sql.DB
}

// NewSQLiteArticleStore creates a new SQLiteArticleStore.
func NewSQLiteArticleStore(db *sql.DB) *SQLiteArticleStore {
	return &SQLiteArticleStore{db: db}
}

const articleColumns = `id, catid, title, alias, introtext, fulltext, state, featured, access, language,
	COALESCE(images,''), COALESCE(params,'{}'), COALESCE(metakey,''), COALESCE(metadesc,''),
	COALESCE(xreference,''), created_by, created_at`

// Save validates a and inserts it together with its custom field values,
// assigning a.ID. Values for field names unknown to the article context are
// ignored.
func (s *SQLiteArticleStore) Save(ctx context.Context, a *domain.Article) (int64, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return 0, invalid("Please enter a title.")
	}
	if a.CatID == 0 {
		return 0, invalid("Please select a category.")
	}

	params, err := encodeJSON(a.Params)
	if err != nil {
		return 0, err
	}
	images := ""
	if len(a.Images) > 0 {
		b, err := json.Marshal(a.Images)
		if err != nil {
			return 0, fmt.Errorf("encode images: %w", err)
		}
		images = string(b)
	}

	a.Alias = makeAlias(a.Alias, a.Title)
	a.Access = accessOrDefault(a.Access)
	a.Language = languageOrAll(a.Language)
	state := stateOrPublished(a.State)
	a.State = &state
	a.CreatedAt = now()

	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, `SELECT 1 FROM categories WHERE id = ? AND extension = 'com_content'`, a.CatID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !ok {
			return invalid(fmt.Sprintf("Category %d not found.", a.CatID))
		}

		taken, err := exists(ctx, tx, `SELECT 1 FROM content WHERE catid = ? AND alias = ?`, a.CatID, a.Alias)
		if err != nil {
			return fmt.Errorf("check article alias: %w", err)
		}
		if taken {
			return invalid("Another article from this category has the same alias (remember it may be a trashed item).")
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO content (catid, title, alias, introtext, fulltext, state, featured, access, language,
				images, params, metakey, metadesc, xreference, created_by, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.CatID, a.Title, a.Alias, a.IntroText, a.FullText, int(state), a.Featured, a.Access, a.Language,
			images, params, a.Metakey, a.Metadesc, a.XReference, a.CreatedUserID, a.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert article: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		a.ID = id

		for name, value := range a.Fields {
			var fieldID int64
			err := tx.QueryRowContext(ctx,
				`SELECT id FROM fields WHERE context = ? AND name = ?`, domain.ArticleContext, name,
			).Scan(&fieldID)
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			if err != nil {
				return fmt.Errorf("resolve field %s: %w", name, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO fields_values (field_id, item_id, value) VALUES (?, ?, ?)`,
				fieldID, id, value,
			); err != nil {
				return fmt.Errorf("insert field value %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		a.ID = 0
		return 0, err
	}

	return a.ID, nil
}

// Get retrieves a single article by ID, including its field values.
func (s *SQLiteArticleStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM content WHERE id = ?`, id)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}

	values, err := s.FieldValues(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		a.Fields = values
	}
	return a, nil
}

// List returns a page of articles, optionally limited to one category.
func (s *SQLiteArticleStore) List(ctx context.Context, catID int64, opts domain.ListOpts) (*domain.Page[*domain.Article], error) {
	limit := limitOrDefault(opts.Limit)

	query := `SELECT ` + articleColumns + ` FROM content WHERE id > ?`
	args := []any{opts.After}
	if catID != 0 {
		query += ` AND catid = ?`
		args = append(args, catID)
	}
	query += ` ORDER BY id ASC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var articles []*domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return page(articles, limit, func(a *domain.Article) int64 { return a.ID }), nil
}

// Count returns the number of articles, optionally limited to one category.
func (s *SQLiteArticleStore) Count(ctx context.Context, catID int64) (int, error) {
	query := `SELECT COUNT(*) FROM content`
	var args []any
	if catID != 0 {
		query += ` WHERE catid = ?`
		args = append(args, catID)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// FieldValues returns the custom field values stored for an article, keyed by
// field name.
func (s *SQLiteArticleStore) FieldValues(ctx context.Context, id int64) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT f.name, COALESCE(v.value,'') FROM fields_values v
		 JOIN fields f ON f.id = v.field_id
		 WHERE v.item_id = ? AND f.context = ?`,
		id, domain.ArticleContext,
	)
	if err != nil {
		return nil, fmt.Errorf("query field values: %w", err)
	}
	defer func() { _ = rows.Close() }()

	values := map[string]string{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan field value: %w", err)
		}
		values[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return values, nil
}

func scanArticle(row scanner) (*domain.Article, error) {
	var a domain.Article
	var state int
	var images, params string
	if err := row.Scan(&a.ID, &a.CatID, &a.Title, &a.Alias, &a.IntroText, &a.FullText, &state, &a.Featured,
		&a.Access, &a.Language, &images, &params, &a.Metakey, &a.Metadesc, &a.XReference,
		&a.CreatedUserID, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.State = domain.StatePtr(domain.State(state))
	a.Params = decodeJSON(params)
	if images != "" {
		_ = json.Unmarshal([]byte(images), &a.Images)
	}
	return &a, nil
}
