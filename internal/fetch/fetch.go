package fetch

import (
	"context"
	"fmt"

	"brandwatch/internal/domain"
)

// Request carries the parameters of one provider call.
type Request struct {
	Query      string
	MaxResults int
}

// Fetcher is one news provider normalizing its own schema into RawArticle.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, req Request) ([]domain.RawArticle, error)
}

// Registry keeps a mapping from provider names to their implementations.
type Registry struct {
	fetchers map[string]Fetcher
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{fetchers: map[string]Fetcher{}}
}

// Register adds or replaces a fetcher implementation.
func (r *Registry) Register(f Fetcher) {
	if r.fetchers == nil {
		r.fetchers = map[string]Fetcher{}
	}
	r.fetchers[f.Name()] = f
}

// Resolve returns a fetcher by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Fetcher, error) {
	if f, ok := r.fetchers[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("provider %s is not registered", name)
}
