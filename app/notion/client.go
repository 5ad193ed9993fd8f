package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const apiVersion = "2022-06-28"

// Config holds everything the client needs; no environment access happens
// here so normalizers stay testable against a fake server.
type Config struct {
	Token     string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	token      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// APIError is returned for any non-2xx response from the content source.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error %d (%s): %s", e.Status, e.Code, e.Message)
}

type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

type Query struct {
	Sorts    []Sort `json:"sorts,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.notion.com"
	}

	return &Client{
		token:      config.Token,
		baseURL:    baseURL,
		userAgent:  config.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Sorts       []Sort `json:"sorts,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryDatabase returns every page of a database, following cursor pagination.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query *Query) ([]Page, error) {
	if databaseID == "" {
		return nil, fmt.Errorf("database ID is empty")
	}

	req := queryRequest{}
	if query != nil {
		req.Sorts = query.Sorts
		req.PageSize = query.PageSize
	}

	var pages []Page
	for {
		var resp queryResponse
		err := c.do(ctx, "POST", fmt.Sprintf("/v1/databases/%s/query", databaseID), req, &resp)
		if err != nil {
			return nil, err
		}

		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		req.StartCursor = *resp.NextCursor
	}

	return pages, nil
}

type blockChildrenResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// GetBlockChildren returns the body blocks of a page, following pagination.
func (c *Client) GetBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	if blockID == "" {
		return nil, fmt.Errorf("block ID is empty")
	}

	var blocks []Block
	cursor := ""
	for {
		path := fmt.Sprintf("/v1/blocks/%s/children?page_size=100", blockID)
		if cursor != "" {
			path += "&start_cursor=" + cursor
		}

		var resp blockChildrenResponse
		if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
			return nil, err
		}

		blocks = append(blocks, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	return blocks, nil
}

type createPageRequest struct {
	Parent     map[string]string   `json:"parent"`
	Properties map[string]Property `json:"properties"`
}

// CreatePage creates one record in a database. Used by the contact write path.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]Property) (*Page, error) {
	if databaseID == "" {
		return nil, fmt.Errorf("database ID is empty")
	}

	req := createPageRequest{
		Parent:     map[string]string{"database_id": databaseID},
		Properties: properties,
	}

	var page Page
	if err := c.do(ctx, "POST", "/v1/pages", req, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = string(data)
		}
		apiErr.Status = resp.StatusCode

		slog.Debug("Content source request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", resp.StatusCode)

		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
