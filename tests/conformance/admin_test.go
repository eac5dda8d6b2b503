package conformance_test

import (
	"net/http"
	"testing"
)

func TestResetEndpoint(t *testing.T) {
	resetServer(t)

	// Run step 1 so there is a generated category to clear.
	body := applyStep(t, "bigdata", 1)
	assertBoolField(t, body, "success", true)

	resp := doRequest(t, http.MethodGet, "/api/content/categories", nil)
	mustStatus(t, resp, http.StatusOK)
	if n := len(assertIsArray(t, readJSON(t, resp), "results")); n != 2 {
		t.Fatalf("expected seeded + generated category before reset, got %d", n)
	}

	resp = doRequest(t, http.MethodPost, "/_sampledata/reset", nil)
	mustStatus(t, resp, http.StatusOK)
	body = readJSON(t, resp)
	assertStringField(t, body, "status", "ok")

	resp = doRequest(t, http.MethodGet, "/api/content/categories", nil)
	mustStatus(t, resp, http.StatusOK)
	results := assertIsArray(t, readJSON(t, resp), "results")
	if len(results) != 1 {
		t.Errorf("expected only the seeded category after reset, got %d", len(results))
	}
}

func TestSeedEndpoint(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/_sampledata/seed", nil)
	mustStatus(t, resp, http.StatusOK)
	body := readJSON(t, resp)
	assertStringField(t, body, "status", "ok")
}

func TestStepLog(t *testing.T) {
	resetServer(t)

	applyStep(t, "bigdata", 1)
	applyStep(t, "bigdata", 2)

	resp := doRequest(t, http.MethodGet, "/_sampledata/steps?limit=1", nil)
	mustStatus(t, resp, http.StatusOK)
	body := readJSON(t, resp)

	results := assertIsArray(t, body, "results")
	if len(results) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(results))
	}
	entry, ok := results[0].(map[string]any)
	if !ok {
		t.Fatalf("expected object entry, got %T", results[0])
	}
	if step, _ := entry["step"].(float64); step != 2 {
		t.Errorf("expected newest entry for step 2, got %v", entry["step"])
	}
	assertBoolField(t, entry, "success", true)
	assertIsString(t, entry, "correlationId")

	if _, ok := body["paging"]; !ok {
		t.Error("expected paging with more entries available")
	}
}
