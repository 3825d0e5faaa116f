package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"SeoContentEngine/internal/analysis"
	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

const defaultResultCount = 10

// PipelineDeps wires all driven adapters into the analysis pipeline.
type PipelineDeps struct {
	Source      ports.SerpSource
	Extractor   ports.EntityExtractor
	Scorer      ports.KeywordScorer
	Outline     *analysis.OutlineGenerator
	ResultCount int
	Publisher   string
	Now         func() time.Time
	Logger      *slog.Logger
}

// Pipeline implements the keyword-to-content-brief workflow. A run has
// exactly two terminal states, completed or failed; no stage error or panic
// ever escapes to the caller.
type Pipeline struct {
	source      ports.SerpSource
	extractor   ports.EntityExtractor
	scorer      ports.KeywordScorer
	outline     *analysis.OutlineGenerator
	resultCount int
	publisher   string
	now         func() time.Time
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	if deps.ResultCount <= 0 {
		deps.ResultCount = defaultResultCount
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Pipeline{
		source:      deps.Source,
		extractor:   deps.Extractor,
		scorer:      deps.Scorer,
		outline:     deps.Outline,
		resultCount: deps.ResultCount,
		publisher:   deps.Publisher,
		now:         deps.Now,
		logger:      deps.Logger,
	}
}

// Run executes the full analysis for one keyword: fetch SERP, build corpus,
// extract entities and score keywords, generate outline, synthesize markup,
// rate quality.
func (p *Pipeline) Run(ctx context.Context, rawKeyword string) (result domain.AnalysisResult) {
	result = domain.AnalysisResult{
		ID:        uuid.New(),
		Status:    domain.StatusFailed,
		CreatedAt: p.now(),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Status = domain.StatusFailed
			result.Error = fmt.Sprintf("analysis panicked: %v", r)
			p.warn("recovered pipeline panic", "keyword", rawKeyword, "panic", r)
		}
	}()

	keyword, err := domain.ParseKeyword(rawKeyword)
	if err != nil {
		result.Error = fmt.Sprintf("invalid keyword: %v", err)
		return result
	}
	result.Keyword = keyword

	records, err := p.source.FetchResults(ctx, keyword, p.resultCount)
	if err != nil {
		result.Error = fmt.Sprintf("fetch serp results: %v", err)
		return result
	}
	if len(records) == 0 {
		result.Error = "serp provider returned no results"
		return result
	}
	result.SerpResults = records

	documents, headings := analysis.BuildCorpus(records)
	result.Headings = headings
	corpus := strings.Join(documents, " ")

	// Extraction and scoring are independent given the same corpus.
	var (
		entities []domain.Entity
		scored   []domain.ScoredKeyword
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		extracted, extractErr := p.extractor.Extract(gctx, corpus, keyword)
		if extractErr != nil {
			p.warn("entity extraction degraded to empty", "keyword", keyword.String(), "error", extractErr)
			return nil
		}
		entities = dropEmptyEntities(extracted)
		return nil
	})
	g.Go(func() error {
		ranked, scoreErr := p.scorer.Score(gctx, documents, keyword)
		if scoreErr != nil {
			p.warn("keyword scoring degraded to empty", "keyword", keyword.String(), "error", scoreErr)
			return nil
		}
		scored = ranked
		return nil
	})
	_ = g.Wait()

	result.Entities = entities
	result.ScoredKeywords = scored

	outline := p.outline.Generate(ctx, keyword, entities, scored)
	if outline.Empty() {
		result.Error = "outline generation produced no content"
		return result
	}
	result.Outline = outline

	result.Markup = analysis.SynthesizeMarkup(keyword, scored, p.publisher, result.CreatedAt)
	result.QualityScore = analysis.ScoreResult(result)
	result.Status = domain.StatusCompleted

	p.info("analysis completed",
		"keyword", keyword.String(),
		"serp_results", len(records),
		"entities", len(entities),
		"scored_keywords", len(scored),
		"quality_score", result.QualityScore,
	)
	return result
}

// dropEmptyEntities enforces the invariant that no entity carries empty text.
func dropEmptyEntities(entities []domain.Entity) []domain.Entity {
	kept := entities[:0]
	for _, entity := range entities {
		if strings.TrimSpace(entity.Text) != "" {
			kept = append(kept, entity)
		}
	}
	return kept
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
