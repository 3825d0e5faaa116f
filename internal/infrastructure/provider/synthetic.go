package provider

import (
	"context"
	"fmt"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/serp"
)

// SyntheticProvider generates deterministic competitor records for a
// keyword. Every title, snippet and h1 references the keyword so downstream
// extraction always has signal. Identical (keyword, count) input yields
// byte-identical output, which keeps pipeline runs reproducible in tests.
type SyntheticProvider struct{}

var _ serp.Provider = (*SyntheticProvider)(nil)

// NewSyntheticProvider builds the mock SERP strategy.
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

// Name identifies the strategy inside the registry.
func (p *SyntheticProvider) Name() string {
	return "synthetic"
}

// Fetch returns exactly req.Count records shaped like a commercial SERP:
// two hand-written leaders followed by templated expert-analysis entries.
func (p *SyntheticProvider) Fetch(_ context.Context, req serp.Request) ([]domain.SerpRecord, error) {
	if req.Count <= 0 {
		return nil, nil
	}

	kw := req.Keyword.String()
	slug := req.Keyword.Slug()

	leaders := []domain.SerpRecord{
		{
			Title:   fmt.Sprintf("Best %s in 2025 - Complete Guide", kw),
			URL:     fmt.Sprintf("https://example1.com/%s", slug),
			Snippet: fmt.Sprintf("Discover the top %s options for 2025. Expert reviews and comparisons.", kw),
			H1:      fmt.Sprintf("Best %s 2025", kw),
			H2s: []string{
				fmt.Sprintf("Top %s Brands", kw),
				fmt.Sprintf("%s Features", kw),
				fmt.Sprintf("%s Buying Guide", kw),
			},
		},
		{
			Title:   fmt.Sprintf("2025 %s Comparison - Which One to Choose?", kw),
			URL:     fmt.Sprintf("https://example2.com/%s-2025", slug),
			Snippet: fmt.Sprintf("Compare the latest %s models and find your perfect match.", kw),
			H1:      fmt.Sprintf("%s Comparison 2025", kw),
			H2s: []string{
				fmt.Sprintf("%s Models", kw),
				"Price Comparison",
				"User Reviews",
			},
		},
	}

	records := make([]domain.SerpRecord, 0, req.Count)
	for _, record := range leaders {
		if len(records) == req.Count {
			return records, nil
		}
		records = append(records, record)
	}

	for i := 3; len(records) < req.Count; i++ {
		records = append(records, domain.SerpRecord{
			Title:   fmt.Sprintf("%s Guide %d - Expert Analysis", kw, i),
			URL:     fmt.Sprintf("https://example%d.com/%s", i, slug),
			Snippet: fmt.Sprintf("Professional analysis of %s options and recommendations.", kw),
			H1:      fmt.Sprintf("%s Analysis", kw),
			H2s: []string{
				fmt.Sprintf("%s Overview", kw),
				"Key Features",
				"Recommendations",
			},
		})
	}

	return records, nil
}
