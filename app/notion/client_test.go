package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryDatabaseFollowsPagination(t *testing.T) {
	var cursors []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/databases/db-1/query" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req struct {
			StartCursor string `json:"start_cursor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		cursors = append(cursors, req.StartCursor)

		w.Header().Set("Content-Type", "application/json")
		if req.StartCursor == "" {
			fmt.Fprint(w, `{"results":[{"id":"page-1"}],"has_more":true,"next_cursor":"c2"}`)
			return
		}
		fmt.Fprint(w, `{"results":[{"id":"page-2"}],"has_more":false,"next_cursor":null}`)
	}))
	defer server.Close()

	client := NewClient(Config{Token: "secret", BaseURL: server.URL})

	pages, err := client.QueryDatabase(context.Background(), "db-1", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pages) != 2 || pages[0].ID != "page-1" || pages[1].ID != "page-2" {
		t.Errorf("Unexpected pages: %+v", pages)
	}
	if len(cursors) != 2 || cursors[1] != "c2" {
		t.Errorf("Expected second request to carry the cursor, got %v", cursors)
	}
}

func TestQueryDatabaseSendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Unexpected authorization header %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != "2022-06-28" {
			t.Errorf("Unexpected version header %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("Expected a request ID header")
		}
		if got := r.Header.Get("User-Agent"); got != "portfolio-api/test" {
			t.Errorf("Unexpected user agent %q", got)
		}
		fmt.Fprint(w, `{"results":[],"has_more":false}`)
	}))
	defer server.Close()

	client := NewClient(Config{Token: "secret", BaseURL: server.URL, UserAgent: "portfolio-api/test"})

	if _, err := client.QueryDatabase(context.Background(), "db-1", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestQueryDatabaseEmptyID(t *testing.T) {
	client := NewClient(Config{})

	if _, err := client.QueryDatabase(context.Background(), "", nil); err == nil {
		t.Error("Expected error for empty database ID")
	}
}

func TestAPIErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":"object_not_found","message":"Could not find database"}`)
	}))
	defer server.Close()

	client := NewClient(Config{Token: "secret", BaseURL: server.URL})

	_, err := client.QueryDatabase(context.Background(), "db-x", nil)
	if err == nil {
		t.Fatal("Expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Status != 404 || apiErr.Code != "object_not_found" {
		t.Errorf("Unexpected error fields: %+v", apiErr)
	}
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream proxy error")
	}))
	defer server.Close()

	client := NewClient(Config{Token: "secret", BaseURL: server.URL})

	_, err := client.QueryDatabase(context.Background(), "db-x", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Status != 502 || apiErr.Message != "upstream proxy error" {
		t.Errorf("Unexpected error fields: %+v", apiErr)
	}
}

func TestGetBlockChildrenFollowsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("start_cursor") == "" {
			fmt.Fprint(w, `{"results":[{"type":"paragraph","paragraph":{"rich_text":[{"plain_text":"First."}]}}],"has_more":true,"next_cursor":"c2"}`)
			return
		}
		fmt.Fprint(w, `{"results":[{"type":"paragraph","paragraph":{"rich_text":[{"plain_text":"Second."}]}}],"has_more":false}`)
	}))
	defer server.Close()

	client := NewClient(Config{Token: "secret", BaseURL: server.URL})

	blocks, err := client.GetBlockChildren(context.Background(), "page-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if PlainText(blocks[1].Paragraph.RichText) != "Second." {
		t.Errorf("Unexpected second block: %+v", blocks[1])
	}
}

func TestCreatePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pages" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			Parent     map[string]string   `json:"parent"`
			Properties map[string]Property `json:"properties"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Parent["database_id"] != "contacts-db" {
			t.Errorf("Unexpected parent: %v", req.Parent)
		}
		if _, ok := req.Properties["Name"]; !ok {
			t.Error("Expected Name property in request")
		}

		fmt.Fprint(w, `{"id":"new-page-1"}`)
	}))
	defer server.Close()

	client := NewClient(Config{Token: "secret", BaseURL: server.URL})

	properties := map[string]Property{
		"Name": {Type: "title", Title: []RichText{{Text: &TextContent{Content: "Ada"}}}},
	}
	page, err := client.CreatePage(context.Background(), "contacts-db", properties)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if page.ID != "new-page-1" {
		t.Errorf("Unexpected page ID %q", page.ID)
	}
}
