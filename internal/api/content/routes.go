package content

import (
	"net/http"

	"github.com/johnwards/sampledata/internal/store"
)

// RegisterRoutes adds the content listing endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/content/categories", h.Categories)
	mux.HandleFunc("GET /api/content/articles", h.Articles)
	mux.HandleFunc("GET /api/content/articles/{articleId}", h.Article)
	mux.HandleFunc("GET /api/content/fields", h.Fields)
	mux.HandleFunc("GET /api/content/menus", h.Menus)
	mux.HandleFunc("GET /api/content/menuitems", h.MenuItems)
	mux.HandleFunc("GET /api/content/users", h.Users)
}
