// Package news wraps the NewsAPI v2 endpoints used for headline requests.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Article is a single story as returned by NewsAPI.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type apiResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// Query selects what to fetch. Exactly one of Category and Search is
// honored, Search taking precedence; with neither set the unfiltered top
// headlines are returned.
type Query struct {
	Category string
	Search   string
	Count    int
}

// Client calls the NewsAPI HTTP endpoints.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a NewsAPI client. baseURL may be empty to use the
// public endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns articles for the query. A nil error guarantees a (possibly
// empty) article list; transport and API failures come back as errors so
// callers cannot mistake one for the other.
func (c *Client) Fetch(ctx context.Context, q Query) ([]Article, error) {
	count := q.Count
	if count <= 0 {
		count = 5
	}

	endpoint := "top-headlines"
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(count))
	params.Set("apiKey", c.apiKey)

	switch {
	case q.Search != "":
		endpoint = "everything"
		params.Set("q", q.Search)
		params.Set("sortBy", "publishedAt")
		params.Set("language", "en")
	case q.Category != "":
		params.Set("category", q.Category)
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || parsed.Status == "error" {
		if parsed.Message != "" {
			return nil, fmt.Errorf("%s", parsed.Message)
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return parsed.Articles, nil
}
