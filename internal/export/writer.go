package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// FileWriter persists a finished analysis as browsable artifacts: the
// rendered outline as markdown, the schema markup as JSON-LD and the full
// result as JSON, all under a per-keyword directory.
type FileWriter struct {
	dir    string
	logger *slog.Logger
}

var _ ports.ResultWriter = (*FileWriter)(nil)

// NewFileWriter targets the given base directory.
func NewFileWriter(dir string, log *slog.Logger) *FileWriter {
	return &FileWriter{dir: dir, logger: log}
}

// Write serializes the result; structured values cross into text form only
// here, at the system boundary.
func (w *FileWriter) Write(_ context.Context, result domain.AnalysisResult) error {
	target := filepath.Join(w.dir, result.Keyword.Slug())
	if result.Keyword == "" {
		target = filepath.Join(w.dir, result.ID.String())
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(target, "outline.md"), []byte(result.Outline.Render()), 0o644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}

	markup, err := json.MarshalIndent(result.Markup, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema markup: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target, "schema.json"), markup, 0o644); err != nil {
		return fmt.Errorf("write schema markup: %w", err)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target, "analysis.json"), payload, 0o644); err != nil {
		return fmt.Errorf("write analysis result: %w", err)
	}

	if w.logger != nil {
		w.logger.Debug("analysis exported", "dir", target)
	}
	return nil
}
