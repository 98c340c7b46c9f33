package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"brandwatch/internal/domain"
	"brandwatch/internal/fetch"
)

// MediastackClient queries the mediastack live-news endpoint.
type MediastackClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ fetch.Fetcher = (*MediastackClient)(nil)

// NewMediastackClient wires endpoint and credentials; client may be nil.
func NewMediastackClient(baseURL, apiKey string, client *http.Client) *MediastackClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &MediastackClient{baseURL: baseURL, apiKey: apiKey, httpClient: client}
}

// Name identifies the provider inside the registry.
func (c *MediastackClient) Name() string {
	return "mediastack"
}

// Fetch returns at most req.MaxResults raw articles for the query.
func (c *MediastackClient) Fetch(ctx context.Context, req fetch.Request) ([]domain.RawArticle, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mediastack url %s: %w", c.baseURL, err)
	}

	query := endpoint.Query()
	query.Set("access_key", c.apiKey)
	query.Set("keywords", req.Query)
	endpoint.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mediastack fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mediastack returned %s", resp.Status)
	}

	var raw mediastackResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("mediastack decode: %w", err)
	}

	items := raw.Data
	if req.MaxResults > 0 && len(items) > req.MaxResults {
		items = items[:req.MaxResults]
	}

	articles := make([]domain.RawArticle, 0, len(items))
	for _, item := range items {
		articles = append(articles, domain.RawArticle{
			Date:    item.PublishedAt,
			Title:   item.Title,
			Content: item.Description,
			Source:  item.Source,
			Link:    item.URL,
		})
	}

	return articles, nil
}

type mediastackResponse struct {
	Data []mediastackItem `json:"data"`
}

type mediastackItem struct {
	PublishedAt string `json:"published_at"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
}
