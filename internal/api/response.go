package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/johnwards/sampledata/internal/logfields"
)

// WriteJSON marshals v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write JSON response", logfields.Error(err))
	}
}

// Paging represents cursor-based pagination info in list responses.
type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

// PagingNext holds the cursor for the next page.
type PagingNext struct {
	After string `json:"after"`
}

// CollectionResponse is a generic paginated list response.
type CollectionResponse struct {
	Results []any   `json:"results"`
	Paging  *Paging `json:"paging,omitempty"`
}

// NextPage returns the paging block for a page ending at after, or nil when
// there are no more results.
func NextPage(hasMore bool, after int64) *Paging {
	if !hasMore {
		return nil
	}
	return &Paging{Next: &PagingNext{After: strconv.FormatInt(after, 10)}}
}

// ParseListParams reads the limit and after query parameters shared by list
// endpoints. Missing or malformed values read as zero.
func ParseListParams(r *http.Request) (limit int, after int64) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := q.Get("after"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			after = n
		}
	}
	return limit, after
}
