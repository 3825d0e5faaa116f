package ports

import (
	"context"

	"SeoContentEngine/internal/domain"
)

// SerpSource supplies ranked competitor results for a keyword. An upstream
// that cannot produce records yields an empty slice, not an error; the
// orchestrator decides what emptiness means.
type SerpSource interface {
	FetchResults(ctx context.Context, keyword domain.Keyword, count int) ([]domain.SerpRecord, error)
}

// EntityExtractor identifies salient entities. Implementations may work over
// the assembled corpus text (NLP model) or over the keyword itself
// (heuristic); the pipeline must not depend on which is active.
type EntityExtractor interface {
	Extract(ctx context.Context, corpus string, keyword domain.Keyword) ([]domain.Entity, error)
}

// KeywordScorer computes term-importance scores over the document
// collection, sorted descending by score with no duplicate terms.
type KeywordScorer interface {
	Score(ctx context.Context, documents []string, keyword domain.Keyword) ([]domain.ScoredKeyword, error)
}

// GenerationRequest carries a prompt plus sampling parameters to a remote
// text-generation service.
type GenerationRequest struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int
	Temperature  float32
}

// TextGenerator produces free text from a prompt; treated as untrusted and
// unreliable, callers must tolerate any failure.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// ResultWriter delivers a finished analysis to the outside world.
type ResultWriter interface {
	Write(ctx context.Context, result domain.AnalysisResult) error
}
