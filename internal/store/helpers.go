package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/urlsafe"
)

// defaultPageSize is used when a listing is requested without a limit.
const defaultPageSize = 100

// now returns the current UTC time formatted as a database timestamp.
func now() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// exists reports whether query returns at least one row.
func exists(ctx context.Context, q querier, query string, args ...any) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// makeAlias derives the stored alias from an explicit alias or, failing that,
// the title. A title made only of punctuation falls back to a timestamp.
func makeAlias(alias, title string) string {
	if strings.TrimSpace(alias) == "" {
		alias = title
	}
	if a := urlsafe.String(alias); a != "" {
		return a
	}
	return time.Now().UTC().Format("2006-01-02-15-04-05")
}

// encodeJSON renders v for a TEXT column. Nil maps become "{}".
func encodeJSON(v map[string]any) (string, error) {
	if len(v) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}

func decodeJSON(s string) map[string]any {
	out := map[string]any{}
	if s == "" {
		return out
	}
	_ = json.Unmarshal([]byte(s), &out)
	return out
}

func stateOrPublished(s *domain.State) domain.State {
	if s == nil {
		return domain.StatePublished
	}
	return *s
}

func accessOrDefault(access int) int {
	if access <= 0 {
		return 1
	}
	return access
}

func languageOrAll(lang string) string {
	if lang == "" {
		return "*"
	}
	return lang
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}

// page trims a result set fetched with limit+1 rows into a Page.
func page[T any](items []T, limit int, id func(T) int64) *domain.Page[T] {
	p := &domain.Page[T]{Results: items}
	if len(items) > limit {
		p.HasMore = true
		p.Results = items[:limit]
		p.After = id(items[limit-1])
	}
	if p.Results == nil {
		p.Results = []T{}
	}
	return p
}
