package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/johnwards/sampledata/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	Create(ctx context.Context, name, username, email string) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, opts domain.ListOpts) (*domain.Page[*domain.User], error)
}

// SQLiteUserStore implements UserStore backed by SQLite.
type SQLiteUserStore struct {
	db *sql.DB
}

// NewSQLiteUserStore creates a new SQLiteUserStore.
func NewSQLiteUserStore(db *sql.DB) *SQLiteUserStore {
	return &SQLiteUserStore{db: db}
}

// Create inserts a new user.
func (s *SQLiteUserStore) Create(ctx context.Context, name, username, email string) (*domain.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, username, email, created_at) VALUES (?, ?, ?, ?)`,
		name, username, email, now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.User{ID: id, Name: name, Username: username, Email: email}, nil
}

// Get retrieves a single user by ID.
func (s *SQLiteUserStore) Get(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, username, email FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Username, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List returns a paginated list of users.
func (s *SQLiteUserStore) List(ctx context.Context, opts domain.ListOpts) (*domain.Page[*domain.User], error) {
	limit := limitOrDefault(opts.Limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, username, email FROM users WHERE id > ? ORDER BY id ASC LIMIT ?`,
		opts.After, limit+1,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return page(users, limit, func(u *domain.User) int64 { return u.ID }), nil
}
