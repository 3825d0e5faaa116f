package nlp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// NERExtractor runs a pretrained token-classification model over the corpus
// and maps its spans onto the entity vocabulary. It satisfies the same
// contract as the keyword heuristic; the pipeline does not care which is
// active. The model handle is safe for concurrent read-only use across
// pipeline invocations.
type NERExtractor struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
	logger   *slog.Logger
}

var _ ports.EntityExtractor = (*NERExtractor)(nil)

// NewNERExtractor downloads the model if needed and prepares a NER pipeline.
func NewNERExtractor(modelName, modelDir string, log *slog.Logger) (*NERExtractor, error) {
	modelPath, err := prepareModel(modelName, modelDir)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("create hugot session: %w", err)
	}

	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-pipeline",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}),
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("create NER pipeline: %w", err)
	}

	return &NERExtractor{session: session, pipeline: nerPipeline, logger: log}, nil
}

// Extract runs NER over the corpus text; the keyword is unused by this
// strategy. Entities come back in first-occurrence order with character
// offsets into the corpus.
func (e *NERExtractor) Extract(_ context.Context, corpus string, _ domain.Keyword) ([]domain.Entity, error) {
	if strings.TrimSpace(corpus) == "" {
		return nil, nil
	}

	result, err := e.pipeline.RunPipeline([]string{corpus})
	if err != nil {
		return nil, fmt.Errorf("run NER: %w", err)
	}
	if len(result.Entities) == 0 {
		return nil, nil
	}

	var entities []domain.Entity
	for _, span := range result.Entities[0] {
		text := strings.TrimSpace(span.Word)
		if text == "" {
			continue
		}
		entities = append(entities, domain.Entity{
			Text:     text,
			Category: categoryForLabel(span.Entity),
			Start:    int(span.Start),
			End:      int(span.End),
		})
	}
	return entities, nil
}

// Close tears down the model session.
func (e *NERExtractor) Close() error {
	if e.session == nil {
		return nil
	}
	return e.session.Destroy()
}

// categoryForLabel strips BIO tagging prefixes and maps NER labels onto the
// entity vocabulary.
func categoryForLabel(label string) domain.EntityCategory {
	label = strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")
	switch strings.ToUpper(label) {
	case "PER", "PERSON":
		return domain.EntityPerson
	case "ORG", "ORGANIZATION":
		return domain.EntityOrg
	case "LOC", "GPE", "LOCATION":
		return domain.EntityLocation
	default:
		return domain.EntityConcept
	}
}

// prepareModel downloads the ONNX model on first use and returns its path.
func prepareModel(modelName, modelDir string) (string, error) {
	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelName, "/", "_"))
	if _, err := os.Stat(modelPath); err == nil {
		return modelPath, nil
	}

	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		return "", fmt.Errorf("create model directory: %w", err)
	}

	downloadOptions := hugot.NewDownloadOptions()
	downloadOptions.OnnxFilePath = "model.onnx"
	downloadedPath, err := hugot.DownloadModel(modelName, modelDir, downloadOptions)
	if err != nil {
		return "", fmt.Errorf("download model %s: %w", modelName, err)
	}
	return downloadedPath, nil
}
