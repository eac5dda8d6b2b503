package sampledata

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UserState is per-user storage that survives between step requests. Values
// are opaque strings; the plugin stores JSON in them.
type UserState interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

var errNoState = errors.New("user state unavailable")

func stateKey(plugin, name string) string {
	return "sampledata." + plugin + "." + name
}

func putState(s UserState, key string, v any) error {
	if s == nil {
		return errNoState
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.Set(key, string(b))
	return nil
}

// loadState decodes key into dst. A missing key leaves dst untouched.
func loadState(s UserState, key string, dst any) error {
	if s == nil {
		return errNoState
	}
	raw, ok := s.Get(key)
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
