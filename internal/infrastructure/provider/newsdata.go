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

// NewsdataClient queries the newsdata.io latest-news endpoint.
type NewsdataClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ fetch.Fetcher = (*NewsdataClient)(nil)

// NewNewsdataClient wires endpoint and credentials; client may be nil.
func NewNewsdataClient(baseURL, apiKey string, client *http.Client) *NewsdataClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &NewsdataClient{baseURL: baseURL, apiKey: apiKey, httpClient: client}
}

// Name identifies the provider inside the registry.
func (c *NewsdataClient) Name() string {
	return "newsdata"
}

// Fetch returns at most req.MaxResults raw articles for the query.
func (c *NewsdataClient) Fetch(ctx context.Context, req fetch.Request) ([]domain.RawArticle, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid newsdata url %s: %w", c.baseURL, err)
	}

	query := endpoint.Query()
	query.Set("apikey", c.apiKey)
	query.Set("q", req.Query)
	endpoint.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("newsdata fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsdata returned %s", resp.Status)
	}

	var raw newsdataResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsdata decode: %w", err)
	}

	results := raw.Results
	if req.MaxResults > 0 && len(results) > req.MaxResults {
		results = results[:req.MaxResults]
	}

	articles := make([]domain.RawArticle, 0, len(results))
	for _, item := range results {
		articles = append(articles, domain.RawArticle{
			Date:    item.PubDate,
			Title:   item.Title,
			Content: item.Description,
			Source:  item.SourceID,
			Link:    item.Link,
		})
	}

	return articles, nil
}

type newsdataResponse struct {
	Results []newsdataResult `json:"results"`
}

type newsdataResult struct {
	PubDate     string `json:"pubDate"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceID    string `json:"source_id"`
	Link        string `json:"link"`
}
