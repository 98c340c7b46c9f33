package enrich

import (
	"context"

	"brandwatch/internal/domain"
)

// summaryLimit caps the number of characters taken from the article body.
const summaryLimit = 200

// Enricher derives the summary, tone and model fields of one article. The
// transform is row-wise and order-independent; date parsing belongs to the
// pipeline, not here.
type Enricher struct {
	tones *ToneNormalizer
}

// NewEnricher builds the per-article transform around a tone normalizer.
func NewEnricher(tones *ToneNormalizer) *Enricher {
	return &Enricher{tones: tones}
}

// Enrich returns the enriched article for one raw provider record. Total:
// empty titles and bodies still produce a summary, tone and model.
func (e *Enricher) Enrich(ctx context.Context, raw domain.RawArticle) domain.Article {
	return domain.Article{
		Title:   raw.Title,
		Content: raw.Content,
		Source:  raw.Source,
		Link:    raw.Link,
		Summary: Summarize(raw.Content),
		Tone:    e.tones.Classify(ctx, raw.Content),
		Model:   DetectModel(raw.Title),
	}
}

// Summarize truncates content to summaryLimit characters. The ellipsis is
// appended to any non-empty content, even content already shorter than the
// limit; an empty body yields the fixed placeholder instead.
func Summarize(content string) string {
	if content == "" {
		return domain.NoContentPlaceholder
	}
	runes := []rune(content)
	if len(runes) > summaryLimit {
		runes = runes[:summaryLimit]
	}
	return string(runes) + "..."
}
