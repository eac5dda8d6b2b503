package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnwards/sampledata/internal/logfields"
)

// HeaderCorrelationID carries the request's correlation ID in both directions.
const HeaderCorrelationID = "X-Correlation-Id"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type contextKey int

const correlationIDKey contextKey = iota

// CorrelationID returns the correlation ID from the request context.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// Chain applies middleware in order so that the first middleware is the
// outermost handler.
func Chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// Recovery turns a panicking handler into a 500 in the error envelope.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						logfields.CorrelationID(CorrelationID(r.Context())),
					)
					Fail(w, r, http.StatusInternalServerError, "Internal Server Error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestID tags each request with a correlation ID. A UUID sent by the client
// is kept so step runs can be traced from the caller through the step log and
// published events; anything else is replaced by a fresh UUID v4.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderCorrelationID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), correlationIDKey, id)))
		})
	}
}

// Auth requires "Authorization: Bearer <token>" on every path outside public.
// An empty token disables the check.
func Auth(token string, public ...string) Middleware {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if underAny(r.URL.Path, public) {
				next.ServeHTTP(w, r)
				return
			}
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || got != token {
				Fail(w, r, http.StatusUnauthorized,
					"Authentication credentials not found. Send the configured token as a Bearer Authorization header.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// JSONContentType defaults responses to application/json, except under the
// raw paths, which set their own content type.
func JSONContentType(raw ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !underAny(r.URL.Path, raw) {
				w.Header().Set("Content-Type", "application/json")
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.code = code
	sw.ResponseWriter.WriteHeader(code)
}

// Logging logs one line per request.
func Logging() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(sw, r)

			level := slog.LevelInfo
			if sw.code >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(r.Context(), level, "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.code,
				"duration_ms", time.Since(start).Milliseconds(),
				logfields.CorrelationID(CorrelationID(r.Context())),
			)
		})
	}
}

// underAny reports whether path equals one of prefixes or lies beneath it.
func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		base := strings.TrimSuffix(p, "/")
		if path == base || strings.HasPrefix(path, base+"/") {
			return true
		}
	}
	return false
}
