package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// SearchClient queries the X API v2 recent-search endpoint. Without a bearer
// token it operates in dry-run mode: every query returns zero results and no
// request goes out.
type SearchClient struct {
	client      *http.Client
	endpoint    string
	bearerToken string
	maxResults  int
}

// NewSearchClient creates a search client. bearerToken may be empty (dry-run).
func NewSearchClient(endpoint, bearerToken string, maxResults int) *SearchClient {
	return &SearchClient{
		client:      &http.Client{Timeout: 30 * time.Second},
		endpoint:    endpoint,
		bearerToken: bearerToken,
		maxResults:  maxResults,
	}
}

// DryRun reports whether the client has no credential.
func (c *SearchClient) DryRun() bool {
	return c.bearerToken == ""
}

// Search issues one recent-search request and returns its result items.
// One page only, no retry; the caller treats an error as zero results.
func (c *SearchClient) Search(query string) ([]Tweet, error) {
	if c.DryRun() {
		return nil, nil
	}

	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	q := req.URL.Query()
	q.Add("query", query)
	q.Add("max_results", strconv.Itoa(c.maxResults))
	q.Add("tweet.fields", "text,entities,created_at")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	debugLog("search API response for %q: status=%d", query, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
	}

	var payload struct {
		Data []Tweet `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing search response for %q: %w", query, err)
	}

	return payload.Data, nil
}
