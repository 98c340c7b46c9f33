package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"brandwatch/internal/domain"
	"brandwatch/internal/enrich"
	"brandwatch/internal/ports"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// Bounds accepted for the per-provider result count.
const (
	MinResults     = 5
	MaxResults     = 30
	DefaultResults = 10
)

// Filters narrows the displayed table. Filtering happens after notification:
// the notifier always sees every fetched article.
type Filters struct {
	Model string
	Tone  string
}

// Result is the outcome of one scan: the filtered table, the buzz index
// computed from it, and the pre-filter row count.
type Result struct {
	Articles []domain.Article
	Buzz     domain.BuzzIndex
	Total    int
}

// Deps wires all driven adapters into the orchestration pipeline.
type Deps struct {
	Source   ports.ArticleSource
	Enricher *enrich.Enricher
	Notifier ports.Notifier
	Jitter   JitterFunc
	Logger   *slog.Logger
}

// Pipeline implements the merge -> enrich -> sort -> notify -> filter -> score
// workflow of one scan.
type Pipeline struct {
	source   ports.ArticleSource
	enricher *enrich.Enricher
	notifier ports.Notifier
	jitter   JitterFunc
	logger   *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps Deps) *Pipeline {
	jitter := deps.Jitter
	if jitter == nil {
		jitter = DefaultJitter
	}
	return &Pipeline{
		source:   deps.Source,
		enricher: deps.Enricher,
		notifier: deps.Notifier,
		jitter:   jitter,
		logger:   deps.Logger,
	}
}

// Scan fetches from every configured provider and runs the pipeline over the
// merged lists. maxResults is clamped into [MinResults, MaxResults].
func (p *Pipeline) Scan(ctx context.Context, query string, maxResults int, filters Filters) (Result, error) {
	if p.source == nil {
		return Result{}, domain.ErrNoArticles
	}
	lists := p.source.Fetch(ctx, query, ClampMaxResults(maxResults))
	return p.Run(ctx, lists, filters)
}

// Run executes one scan over already-fetched raw lists. Lists are merged by
// plain concatenation in provider order; duplicate articles across providers
// are kept and scored independently.
func (p *Pipeline) Run(ctx context.Context, lists [][]domain.RawArticle, filters Filters) (Result, error) {
	var raws []domain.RawArticle
	for _, list := range lists {
		raws = append(raws, list...)
	}
	if len(raws) == 0 {
		return Result{}, domain.ErrNoArticles
	}

	articles := make([]domain.Article, 0, len(raws))
	for _, raw := range raws {
		article := p.enricher.Enrich(ctx, raw)
		article.Date = parseDate(raw.Date)
		articles = append(articles, article)
	}

	// Descending by date; rows without a date read as the zero time and
	// group at the bottom, keeping their provider order.
	sort.SliceStable(articles, func(i, j int) bool {
		return dateValue(articles[i].Date).After(dateValue(articles[j].Date))
	})

	// Notifications go out before filtering: the notification count always
	// equals the fetched article count, whatever the active filters.
	if p.notifier != nil {
		for _, article := range articles {
			if err := p.notifier.Notify(ctx, article); err != nil {
				p.warn("notification failed", "link", article.Link, "error", err)
			}
		}
	}

	filtered := applyFilters(articles, filters)
	p.debug("scan complete", "fetched", len(articles), "displayed", len(filtered))

	return Result{
		Articles: filtered,
		Buzz:     buzzIndex(len(filtered), p.jitter),
		Total:    len(articles),
	}, nil
}

// ClampMaxResults bounds the requested per-provider count, defaulting when
// the caller passed nothing usable.
func ClampMaxResults(n int) int {
	switch {
	case n <= 0:
		return DefaultResults
	case n < MinResults:
		return MinResults
	case n > MaxResults:
		return MaxResults
	default:
		return n
	}
}

func applyFilters(articles []domain.Article, filters Filters) []domain.Article {
	kept := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if !passes(filters.Model, article.Model) {
			continue
		}
		if !passes(filters.Tone, string(article.Tone)) {
			continue
		}
		kept = append(kept, article)
	}
	return kept
}

func passes(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// parseDate turns a provider-native date string into a timestamp,
// best-effort. Unparseable values become nil, never an error.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func dateValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
