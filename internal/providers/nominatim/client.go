package nominatim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Los+Angeles,+CA,+USA&format=json&limit=1
const (
	baseURL          = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "weather-tools/1.0"
	defaultTimeout   = 15 * time.Second
)

// ErrNoMatch indicates the geocoder returned no results for the query.
var ErrNoMatch = errors.New("no match for query")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient() *Client {
	return NewClientWithOptions(baseURL, defaultUserAgent, defaultTimeout)
}

// NewClientWithOptions creates a client against a custom endpoint, useful for
// configuration overrides and tests.
func NewClientWithOptions(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// Search resolves a free-text place query to its best match.
// Returns ErrNoMatch when the geocoder finds nothing.
func (c *Client) Search(query string) (*SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	return &results[0], nil
}
