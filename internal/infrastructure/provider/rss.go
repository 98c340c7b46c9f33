package provider

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"brandwatch/internal/domain"
	"brandwatch/internal/fetch"
)

// RSSClient reads plain feeds (Google News searches, publisher feeds) as an
// extra provider next to the search APIs. The query is not sent anywhere:
// feed URLs already encode it.
type RSSClient struct {
	feeds  []string
	parser *gofeed.Parser
	logger *slog.Logger
}

var _ fetch.Fetcher = (*RSSClient)(nil)

// NewRSSClient wires the configured feed URLs.
func NewRSSClient(feeds []string, logger *slog.Logger) *RSSClient {
	return &RSSClient{feeds: feeds, parser: gofeed.NewParser(), logger: logger}
}

// Name identifies the provider inside the registry.
func (c *RSSClient) Name() string {
	return "rss"
}

// Fetch collects items across all feeds, up to req.MaxResults in total. A
// single broken feed is skipped, not fatal: the remaining feeds still count.
func (c *RSSClient) Fetch(ctx context.Context, req fetch.Request) ([]domain.RawArticle, error) {
	var articles []domain.RawArticle

	for _, feedURL := range c.feeds {
		if req.MaxResults > 0 && len(articles) >= req.MaxResults {
			break
		}

		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("feed unreadable, skipping", "feed", feedURL, "error", err)
			}
			continue
		}

		for _, item := range feed.Items {
			if req.MaxResults > 0 && len(articles) >= req.MaxResults {
				break
			}
			articles = append(articles, domain.RawArticle{
				Date:    item.Published,
				Title:   item.Title,
				Content: stripMarkup(item.Description),
				Source:  feed.Title,
				Link:    item.Link,
			})
		}
	}

	return articles, nil
}

// stripMarkup reduces the HTML-laden descriptions most feeds ship to plain
// text, so summaries and the classifier see prose, not tags.
func stripMarkup(description string) string {
	if !strings.Contains(description, "<") {
		return strings.TrimSpace(description)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.TrimSpace(description)
	}
	return strings.TrimSpace(doc.Text())
}
