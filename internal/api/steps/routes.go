package steps

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/johnwards/sampledata/internal/runner"
)

// RegisterRoutes adds the sample-data step endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, r *runner.Runner, store sessions.Store) {
	h := &Handler{runner: r, sessions: store}

	mux.HandleFunc("GET /api/sampledata/overview", h.Overview)
	mux.HandleFunc("POST /api/sampledata/apply", h.Apply)
	mux.HandleFunc("POST /api/sampledata/apply/{step}", h.Apply)
}
