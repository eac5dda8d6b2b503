package userstate

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// DefaultSessionName is the cookie name used for sample-data state.
const DefaultSessionName = "sampledata"

// NewCookieStore returns a cookie-backed session store keyed by secret. The
// cookie carries the Secure attribute only when secure is set; browsers drop
// Secure cookies on plain http:// and later steps would lose their state.
func NewCookieStore(secret []byte, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options.Path = "/"
	cs.Options.HttpOnly = true
	cs.Options.Secure = secure
	cs.Options.SameSite = http.SameSiteLaxMode
	return cs
}

// Session is user state held in a gorilla session for one request. Changes
// are only persisted by Save.
type Session struct {
	session *sessions.Session
	dirty   bool
}

// Load returns the named session for r. A cookie that no longer decodes, for
// example after the secret changed, yields a fresh session.
func Load(store sessions.Store, r *http.Request, name string) (*Session, error) {
	s, err := store.Get(r, name)
	if err != nil && s == nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{session: s}, nil
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.session.Values[key].(string)
	return v, ok
}

// Set stores value under key.
func (s *Session) Set(key, value string) {
	s.session.Values[key] = value
	s.dirty = true
}

// Save writes the session cookie to w if anything changed.
func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	if !s.dirty {
		return nil
	}
	if err := s.session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.dirty = false
	return nil
}
