package conformance_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// applyStep posts one step for the current test's session and returns the
// decoded {success, message} body.
func applyStep(t *testing.T, pluginType string, step int) map[string]any {
	t.Helper()
	resp := doRequest(t, http.MethodPost, fmt.Sprintf("/api/sampledata/apply/%d?type=%s", step, pluginType), nil)
	mustStatus(t, resp, http.StatusOK)
	return readJSON(t, resp)
}

func TestOverview(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/sampledata/overview", nil)
	mustStatus(t, resp, http.StatusOK)
	body := readJSON(t, resp)

	results := assertIsArray(t, body, "results")
	if len(results) != 1 {
		t.Fatalf("expected 1 sample data type, got %d", len(results))
	}
	ov, ok := results[0].(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", results[0])
	}
	assertStringField(t, ov, "name", "bigdata")
	assertStringField(t, ov, "title", "Big Data sample")
	assertStringField(t, ov, "icon", "bolt")
	if steps, _ := ov["steps"].(float64); steps != 221 {
		t.Errorf("expected 221 steps, got %v", ov["steps"])
	}
}

func TestApplySteps(t *testing.T) {
	resetServer(t)

	for step := 1; step <= 3; step++ {
		body := applyStep(t, "bigdata", step)
		assertBoolField(t, body, "success", true)
		assertStringField(t, body, "message", fmt.Sprintf("Step %d finished with great success!", step))
	}

	resp := doRequest(t, http.MethodGet, "/api/content/fields", nil)
	mustStatus(t, resp, http.StatusOK)
	if n := len(assertIsArray(t, readJSON(t, resp), "results")); n != 10 {
		t.Errorf("expected 10 custom fields, got %d", n)
	}

	resp = doRequest(t, http.MethodGet, "/api/content/articles?limit=100", nil)
	mustStatus(t, resp, http.StatusOK)
	articles := assertIsArray(t, readJSON(t, resp), "results")
	if len(articles) != 20 {
		t.Fatalf("expected 20 articles after two article steps, got %d", len(articles))
	}

	first, ok := articles[0].(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", articles[0])
	}
	intro := assertIsString(t, first, "introtext")
	if !strings.HasPrefix(intro, "<p>") {
		t.Errorf("introtext should be an HTML paragraph, got %q", intro)
	}

	resp = doRequest(t, http.MethodGet, fmt.Sprintf("/api/content/articles/%v", first["id"]), nil)
	mustStatus(t, resp, http.StatusOK)
	article := readJSON(t, resp)
	fields, ok := article["fields"].(map[string]any)
	if !ok || len(fields) != 10 {
		t.Errorf("expected 10 field values on the article, got %v", article["fields"])
	}
}

func TestApplyWithoutFirstStep(t *testing.T) {
	resetServer(t)

	body := applyStep(t, "bigdata", 7)
	assertBoolField(t, body, "success", false)
	assertStringField(t, body, "message", "Step 7 failed with error: category ID not found")
}

func TestSessionsAreIndependent(t *testing.T) {
	resetServer(t)

	body := applyStep(t, "bigdata", 1)
	assertBoolField(t, body, "success", true)

	t.Run("other session", func(t *testing.T) {
		body := applyStep(t, "bigdata", 2)
		assertBoolField(t, body, "success", false)
	})

	body = applyStep(t, "bigdata", 2)
	assertBoolField(t, body, "success", true)
}

func TestMetricsExposed(t *testing.T) {
	resetServer(t)
	applyStep(t, "bigdata", 1)

	resp := doRequest(t, http.MethodGet, "/metrics", nil)
	mustStatus(t, resp, http.StatusOK)
	defer func() { _ = resp.Body.Close() }()

	out := readAll(t, resp)
	for _, name := range []string{"sampledata_steps_total", "sampledata_records_created_total"} {
		if !strings.Contains(out, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestSessionCookieOverPlainHTTP(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/api/sampledata/apply/1?type=bigdata", nil)
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name != "sampledata" {
			continue
		}
		found = true
		if c.Secure {
			t.Error("session cookie must not be Secure when served over http://")
		}
		if !c.HttpOnly {
			t.Error("session cookie should be HttpOnly")
		}
	}
	if !found {
		t.Fatal("step 1 did not set the sampledata session cookie")
	}
}
