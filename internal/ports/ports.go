package ports

import (
	"context"

	"brandwatch/internal/domain"
)

// ArticleSource collects one raw list per configured provider, in provider
// order. Provider failures never escape this boundary: a failing provider
// contributes an empty list.
type ArticleSource interface {
	Fetch(ctx context.Context, query string, maxResults int) [][]domain.RawArticle
}

// ToneClassifier wraps the external text-classification capability. The
// label vocabulary is provider-defined; normalization happens in enrich.
type ToneClassifier interface {
	Classify(ctx context.Context, text string) (label string, confidence float64, err error)
}

// Notifier delivers one enriched article to an outbound channel. Best-effort:
// the pipeline logs failures and moves on.
type Notifier interface {
	Notify(ctx context.Context, article domain.Article) error
}
