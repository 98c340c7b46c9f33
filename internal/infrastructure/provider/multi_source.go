package provider

import (
	"context"
	"log/slog"

	"brandwatch/internal/domain"
	"brandwatch/internal/fetch"
	"brandwatch/internal/ports"
)

// MultiSource runs every configured provider in order and hands the pipeline
// one raw list per provider. Provider failures stop at this boundary: a
// failing provider contributes an empty list so the scan always proceeds
// with whatever the others returned.
type MultiSource struct {
	fetchers []fetch.Fetcher
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*MultiSource)(nil)

// NewMultiSource wires the providers in merge order.
func NewMultiSource(fetchers []fetch.Fetcher, logger *slog.Logger) *MultiSource {
	return &MultiSource{fetchers: fetchers, logger: logger}
}

// Fetch queries each provider sequentially with the same request.
func (s *MultiSource) Fetch(ctx context.Context, query string, maxResults int) [][]domain.RawArticle {
	req := fetch.Request{Query: query, MaxResults: maxResults}

	lists := make([][]domain.RawArticle, 0, len(s.fetchers))
	for _, f := range s.fetchers {
		articles, err := f.Fetch(ctx, req)
		if err != nil {
			s.warn("provider failed, continuing without it", "provider", f.Name(), "error", err)
			articles = nil
		}
		s.debug("provider done", "provider", f.Name(), "count", len(articles))
		lists = append(lists, articles)
	}

	return lists
}

func (s *MultiSource) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *MultiSource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
