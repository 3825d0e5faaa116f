package serp

import (
	"context"
	"fmt"
	"log/slog"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// RegistrySource implements SerpSource via a registered provider strategy
// selected by name.
type RegistrySource struct {
	registry *Registry
	provider string
	logger   *slog.Logger
}

var _ ports.SerpSource = (*RegistrySource)(nil)

// NewRegistrySource wires the provider registry with the configured strategy.
func NewRegistrySource(reg *Registry, provider string, log *slog.Logger) *RegistrySource {
	return &RegistrySource{
		registry: reg,
		provider: provider,
		logger:   log,
	}
}

// FetchResults resolves the configured provider and runs it, trimming the
// record list down to the requested count.
func (s *RegistrySource) FetchResults(ctx context.Context, keyword domain.Keyword, count int) ([]domain.SerpRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("serp registry is not configured")
	}

	strategy, err := s.registry.Resolve(s.provider)
	if err != nil {
		return nil, err
	}

	s.debug("fetch serp results", "provider", s.provider, "keyword", keyword.String(), "count", count)

	records, err := strategy.Fetch(ctx, Request{Keyword: keyword, Count: count})
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", s.provider, err)
	}

	if len(records) > count {
		records = records[:count]
	}
	s.debug("provider produced records", "provider", s.provider, "records", len(records))
	return records, nil
}

func (s *RegistrySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
