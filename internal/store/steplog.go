package store

import (
	"context"
	"database/sql"
	"fmt"
)

// StepLogEntry records the outcome of one applied sample-data step.
type StepLogEntry struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Step          int    `json:"step"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	DurationMs    int64  `json:"durationMs"`
	CorrelationID string `json:"correlationId,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// StepLogStore persists the step audit trail.
type StepLogStore interface {
	Record(ctx context.Context, e *StepLogEntry) error
	List(ctx context.Context, limit int, before int64) ([]*StepLogEntry, bool, error)
}

// SQLiteStepLogStore implements StepLogStore backed by SQLite.
type SQLiteStepLogStore struct {
	db *sql.DB
}

// NewSQLiteStepLogStore creates a new SQLiteStepLogStore.
func NewSQLiteStepLogStore(db *sql.DB) *SQLiteStepLogStore {
	return &SQLiteStepLogStore{db: db}
}

// Record appends e to the log, filling in its ID and timestamp.
func (s *SQLiteStepLogStore) Record(ctx context.Context, e *StepLogEntry) error {
	e.CreatedAt = now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO step_log (type, step, success, message, duration_ms, correlation_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Type, e.Step, e.Success, e.Message, e.DurationMs, e.CorrelationID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert step log: %w", err)
	}
	e.ID, _ = res.LastInsertId()
	return nil
}

// List returns log entries newest first. When before is positive only entries
// with a smaller id are returned.
func (s *SQLiteStepLogStore) List(ctx context.Context, limit int, before int64) ([]*StepLogEntry, bool, error) {
	limit = limitOrDefault(limit)

	query := `SELECT id, type, step, success, COALESCE(message,''), COALESCE(duration_ms,0),
		COALESCE(correlation_id,''), created_at FROM step_log`
	args := []any{}
	if before > 0 {
		query += ` WHERE id < ?`
		args = append(args, before)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("query step log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*StepLogEntry, 0, limit)
	for rows.Next() {
		var e StepLogEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Step, &e.Success, &e.Message, &e.DurationMs,
			&e.CorrelationID, &e.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("scan step log: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("rows iteration: %w", err)
	}

	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}
	return entries, hasMore, nil
}
