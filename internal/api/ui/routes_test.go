package ui_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnwards/sampledata/internal/api/ui"
)

func TestServesRunnerPage(t *testing.T) {
	mux := http.NewServeMux()
	ui.RegisterRoutes(mux)

	for _, path := range []string{"/_ui/", "/_ui/some/client/route"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", path, rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("%s: Content-Type = %q", path, ct)
		}
		body, _ := io.ReadAll(rec.Body)
		if !strings.Contains(string(body), "/api/sampledata/overview") {
			t.Errorf("%s: runner page not served", path)
		}
	}
}

func TestRedirectsBarePrefix(t *testing.T) {
	mux := http.NewServeMux()
	ui.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_ui", http.NoBody))

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if loc := rec.Header().Get("Location"); loc != ui.Prefix {
		t.Errorf("Location = %q, want %q", loc, ui.Prefix)
	}
}
