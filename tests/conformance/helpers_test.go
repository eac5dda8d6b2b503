package conformance_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clients holds one cookie-carrying client per test so each test gets its own
// sample data session.
var clients sync.Map

func client(t *testing.T) *http.Client {
	t.Helper()
	if c, ok := clients.Load(t.Name()); ok {
		return c.(*http.Client)
	}
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c := &http.Client{Jar: jar, Timeout: 30 * time.Second}
	clients.Store(t.Name(), c)
	t.Cleanup(func() { clients.Delete(t.Name()) })
	return c
}

// doRequest sends an authenticated request through the test's client. The
// caller closes the response body.
func doRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var payload io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, serverURL+path, payload)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+authToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client(t).Do(req)
	require.NoError(t, err, "%s %s", method, path)
	return resp
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func readJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw := readAll(t, resp)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out), "status %d, body %s", resp.StatusCode, raw)
	return out
}

// mustStatus stops the test when resp does not carry want, showing the body.
func mustStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d; body=%s", resp.StatusCode, want, readAll(t, resp))
	}
}

// resetServer clears generated content and re-seeds the server.
func resetServer(t *testing.T) {
	t.Helper()
	resp := doRequest(t, http.MethodPost, "/_sampledata/reset", nil)
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()
}

func assertErrorEnvelope(t *testing.T, body map[string]any, category string) {
	t.Helper()
	assertStringField(t, body, "status", "error")
	assertStringField(t, body, "category", category)
	assert.NotEmpty(t, body["message"], "message")
	assert.NotEmpty(t, body["correlationId"], "correlationId")
}

func assertStringField(t *testing.T, m map[string]any, key, want string) {
	t.Helper()
	assert.Equal(t, want, m[key], "field %q", key)
}

func assertBoolField(t *testing.T, m map[string]any, key string, want bool) {
	t.Helper()
	assert.Equal(t, want, m[key], "field %q", key)
}

func assertIsString(t *testing.T, m map[string]any, key string) string {
	t.Helper()
	s, ok := m[key].(string)
	assert.True(t, ok, "field %q should be a string, got %T", key, m[key])
	return s
}

func assertIsArray(t *testing.T, m map[string]any, key string) []any {
	t.Helper()
	a, ok := m[key].([]any)
	assert.True(t, ok, "field %q should be an array, got %T", key, m[key])
	return a
}
