package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"SeoContentEngine/internal/analysis"
	"SeoContentEngine/internal/config"
	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/export"
	"SeoContentEngine/internal/infrastructure/llm"
	"SeoContentEngine/internal/infrastructure/nlp"
	"SeoContentEngine/internal/infrastructure/provider"
	"SeoContentEngine/internal/logging"
	"SeoContentEngine/internal/ports"
	"SeoContentEngine/internal/serp"
	"SeoContentEngine/internal/usecase"
)

// Application wires configuration to the analysis pipeline and its adapters.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	writer   ports.ResultWriter
	logger   *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := serp.NewRegistry()
	registry.Register(provider.NewSyntheticProvider())
	registry.Register(provider.NewHTMLProvider(cfg.Serp.Endpoint, nil, baseLogger.With("component", "serp.html")))

	source := serp.NewRegistrySource(registry, cfg.Serp.Provider, baseLogger.With("component", "serp"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:      source,
		Extractor:   buildExtractor(cfg.NLP, baseLogger),
		Scorer:      buildScorer(cfg.Analysis),
		Outline:     buildOutlineGenerator(cfg.OpenRouter, baseLogger),
		ResultCount: cfg.Serp.ResultCount,
		Publisher:   cfg.Publisher,
		Logger:      baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:      cfg,
		pipeline: pipeline,
		writer:   export.NewFileWriter(cfg.Export.Dir, baseLogger.With("component", "export")),
		logger:   baseLogger,
	}
}

// Run executes one full analysis and exports the result. A failed analysis
// is reported as an error so callers can exit non-zero, but the result is
// still exported for inspection.
func (a *Application) Run(ctx context.Context, keyword string) error {
	result := a.pipeline.Run(ctx, keyword)

	if err := a.writer.Write(ctx, result); err != nil {
		return fmt.Errorf("export analysis: %w", err)
	}

	if result.Status == domain.StatusFailed {
		return fmt.Errorf("analysis failed: %s", result.Error)
	}
	return nil
}

func buildExtractor(cfg config.NLPConfig, baseLogger *slog.Logger) ports.EntityExtractor {
	if cfg.Extractor == "ner" {
		extractor, err := nlp.NewNERExtractor(cfg.ModelName, cfg.ModelDir, baseLogger.With("component", "nlp"))
		if err == nil {
			return extractor
		}
		baseLogger.Warn("NER extractor unavailable, using keyword heuristic", "error", err)
	}
	return analysis.KeywordEntityExtractor{}
}

func buildScorer(cfg config.AnalysisConfig) ports.KeywordScorer {
	if cfg.Scorer == "synthetic" {
		return analysis.NewSyntheticScorer(rand.New(rand.NewSource(cfg.Seed)))
	}
	return analysis.NewTFIDFScorer(cfg.MaxFeatures)
}

func buildOutlineGenerator(cfg config.OpenRouterConfig, baseLogger *slog.Logger) *analysis.OutlineGenerator {
	var generator ports.TextGenerator
	if cfg.APIKey != "" {
		generator = llm.NewOpenRouterGenerator(cfg.APIKey, cfg.Model)
	}

	return analysis.NewOutlineGenerator(generator, analysis.OutlineOptions{
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}, baseLogger.With("component", "outline"))
}
