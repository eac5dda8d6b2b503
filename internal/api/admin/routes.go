package admin

import (
	"net/http"

	"github.com/johnwards/sampledata/internal/store"
)

// RegisterRoutes registers all admin API endpoints on the mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /_sampledata/reset", h.Reset)
	mux.HandleFunc("POST /_sampledata/seed", h.SeedData)
	mux.HandleFunc("GET /_sampledata/steps", h.Steps)
}
