package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSAllowAll(t *testing.T) {
	router := newTestServer(t, &fakeProvider{}, &fakeCreator{}, NewCORSPolicy(nil, true))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "" {
		t.Error("Wildcard responses must not be credential-scoped")
	}
}

func TestCORSAllowListEchoesOrigin(t *testing.T) {
	policy := NewCORSPolicy([]string{"https://codejedi.dev"}, false)
	router := newTestServer(t, &fakeProvider{}, &fakeCreator{}, policy)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://codejedi.dev")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://codejedi.dev" {
		t.Errorf("Expected origin echoed, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Expected credential-scoped response for listed origin")
	}
	if w.Header().Get("Vary") != "Origin" {
		t.Errorf("Expected Vary: Origin, got %q", w.Header().Get("Vary"))
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	policy := NewCORSPolicy([]string{"https://codejedi.dev"}, false)
	router := newTestServer(t, &fakeProvider{}, &fakeCreator{}, policy)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Disallowed origin still gets the response body, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestServer(t, &fakeProvider{}, &fakeCreator{}, NewCORSPolicy(nil, true))

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://codejedi.dev")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected preflight 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != corsMethods {
		t.Errorf("Unexpected allowed methods: %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != corsHeaders {
		t.Errorf("Unexpected allowed headers: %q", got)
	}
}

func TestCORSEmptyAllowListDefaultsToWildcard(t *testing.T) {
	policy := NewCORSPolicy(nil, false)

	if got := policy.Resolve("https://anywhere.example"); got != "*" {
		t.Errorf("Empty allow-list should default to wildcard, got %q", got)
	}
}
