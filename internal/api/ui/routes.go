// Package ui serves the embedded step runner page.
package ui

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/johnwards/sampledata/web"
)

// Prefix is the mount point of the runner. It is public: the page asks the
// operator for the API token itself.
const Prefix = "/_ui/"

// RegisterRoutes mounts the runner under Prefix. Unknown paths fall back to
// index.html.
func RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET "+Prefix, handler(web.Dist()))
	mux.Handle("GET /_ui", http.RedirectHandler(Prefix, http.StatusMovedPermanently))
}

func handler(dist fs.FS) http.Handler {
	files := http.StripPrefix(Prefix, http.FileServerFS(dist))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, Prefix)
		if name != "" && name != "index.html" {
			if _, err := fs.Stat(dist, name); err == nil {
				files.ServeHTTP(w, r)
				return
			}
		}
		serveIndex(w, dist)
	})
}

func serveIndex(w http.ResponseWriter, dist fs.FS) {
	page, err := fs.ReadFile(dist, "index.html")
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		http.Error(w, "runner page unavailable", status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(page)
}
