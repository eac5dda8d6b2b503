package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/johnwards/sampledata/internal/api"
	"github.com/johnwards/sampledata/internal/database"
	"github.com/johnwards/sampledata/internal/seed"
	"github.com/johnwards/sampledata/internal/store"
)

// Handler serves the admin API at /_sampledata/.
type Handler struct {
	store *store.Store
}

// dataTableNames lists all data tables in foreign-key-safe deletion order.
var dataTableNames = []string{
	"fields_values",
	"fields_categories",
	"menu",
	"menu_types",
	"content",
	"fields",
	"categories",
	"step_log",
	"extensions",
	"users",
}

// Reset drops all data from all tables and re-runs seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := ResetData(r.Context(), h.store.DB); err != nil {
		api.Fail(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to reset: %s", err))
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SeedData runs seed data without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.store.DB); err != nil {
		api.Fail(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to seed: %s", err))
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Steps returns step log entries, newest first, with cursor-based pagination.
func (h *Handler) Steps(w http.ResponseWriter, r *http.Request) {
	limit, after := api.ParseListParams(r)
	if limit > 1000 {
		limit = 1000
	}

	entries, hasMore, err := h.store.Steps.List(r.Context(), limit, after)
	if err != nil {
		api.Fail(w, r, http.StatusInternalServerError, fmt.Sprintf("query step log: %s", err))
		return
	}

	results := make([]any, len(entries))
	for i, e := range entries {
		results[i] = e
	}

	var lastID int64
	if len(entries) > 0 {
		lastID = entries[len(entries)-1].ID
	}
	api.WriteJSON(w, http.StatusOK, api.CollectionResponse{
		Results: results,
		Paging:  api.NextPage(hasMore, lastID),
	})
}

// ResetData clears all data tables within a transaction and re-seeds.
func ResetData(ctx context.Context, db *sql.DB) error {
	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, table := range dataTableNames {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil { //nolint:gosec // table names are hardcoded constants
				return fmt.Errorf("clear table %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return seed.Seed(ctx, db)
}
