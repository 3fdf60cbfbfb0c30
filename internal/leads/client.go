package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single lead-search request.
const DefaultTimeout = 30 * time.Second

// Client issues typed requests to the remote lead service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a lead-service client for the given base URL. The API
// key is sent as a bearer token; an empty key is allowed for services that
// authenticate elsewhere.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, &LeadError{Op: "initialize", Err: fmt.Errorf("base URL cannot be empty")}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// SetHTTPClient overrides the underlying HTTP client, for tests.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	if httpClient != nil {
		c.httpClient = httpClient
	}
}

// Search submits a lead query and returns the matching leads. Results arrive
// already ranked by the service; the client imposes no ordering of its own.
func (c *Client) Search(ctx context.Context, query LeadQuery) ([]Lead, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, &LeadError{Op: "search", Err: fmt.Errorf("failed to encode query: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/leads/search", bytes.NewReader(body))
	if err != nil {
		return nil, &LeadError{Op: "search", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LeadError{Op: "search", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Surface a trimmed response body; lead-service errors are short
		// JSON or text messages.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &LeadError{
			Op:  "search",
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
		}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &LeadError{Op: "search", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return result.Leads, nil
}
