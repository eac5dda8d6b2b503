package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/johnwards/sampledata/internal/domain"
)

// ComponentStore resolves installed components.
type ComponentStore interface {
	Lookup(ctx context.Context, element string) (*domain.Component, error)
	List(ctx context.Context) ([]*domain.Component, error)
}

// SQLiteComponentStore implements ComponentStore backed by SQLite.
type SQLiteComponentStore struct {
	db *sql.DB
}

// NewSQLiteComponentStore creates a new SQLiteComponentStore.
func NewSQLiteComponentStore(db *sql.DB) *SQLiteComponentStore {
	return &SQLiteComponentStore{db: db}
}

// Lookup returns the component registered under element, e.g. "com_content".
func (s *SQLiteComponentStore) Lookup(ctx context.Context, element string) (*domain.Component, error) {
	var c domain.Component
	err := s.db.QueryRowContext(ctx,
		`SELECT id, element, name, enabled FROM extensions WHERE element = ?`, element,
	).Scan(&c.ID, &c.Element, &c.Name, &c.Enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("component %s: %w", element, ErrNotFound)
		}
		return nil, fmt.Errorf("lookup component: %w", err)
	}
	return &c, nil
}

// List returns every registered component ordered by id.
func (s *SQLiteComponentStore) List(ctx context.Context) ([]*domain.Component, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, element, name, enabled FROM extensions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*domain.Component
	for rows.Next() {
		var c domain.Component
		if err := rows.Scan(&c.ID, &c.Element, &c.Name, &c.Enabled); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
