package serp

import (
	"context"
	"fmt"

	"SeoContentEngine/internal/domain"
)

// Request carries all parameters required to execute a SERP fetch.
type Request struct {
	Keyword domain.Keyword
	Count   int
}

// Provider captures a single acquisition strategy (synthetic, live HTML, etc.).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, req Request) ([]domain.SerpRecord, error)
}

// Registry keeps a mapping from provider names to their implementations.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register adds or replaces a provider implementation.
func (r *Registry) Register(provider Provider) {
	if r.providers == nil {
		r.providers = map[string]Provider{}
	}
	r.providers[provider.Name()] = provider
}

// Resolve returns a provider by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Provider, error) {
	if provider, ok := r.providers[name]; ok {
		return provider, nil
	}
	return nil, fmt.Errorf("serp provider %s is not registered", name)
}
