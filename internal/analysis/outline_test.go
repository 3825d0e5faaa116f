package analysis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// stubGenerator returns a canned completion or error.
type stubGenerator struct {
	text string
	err  error

	calls int
	last  ports.GenerationRequest
}

func (s *stubGenerator) Generate(_ context.Context, req ports.GenerationRequest) (string, error) {
	s.calls++
	s.last = req
	return s.text, s.err
}

func sampleEntities() []domain.Entity {
	return []domain.Entity{
		{Text: "gravel", Category: domain.EntityTerm},
		{Text: "bikes", Category: domain.EntityTerm},
	}
}

func sampleScored() []domain.ScoredKeyword {
	var scored []domain.ScoredKeyword
	for i := 0; i < 6; i++ {
		scored = append(scored, domain.ScoredKeyword{Term: fmt.Sprintf("term%d", i+1), Score: 1.0 - 0.1*float64(i)})
	}
	return scored
}

func TestFallbackOutline(t *testing.T) {
	t.Run("Always non-empty, even without signal", func(t *testing.T) {
		outline := FallbackOutline(domain.Keyword("gravel bikes"), nil, nil)

		assert.False(t, outline.Empty())
		assert.NotEmpty(t, outline.Sections)
		assert.Greater(t, outline.EstimatedWordCount, 0)
	})

	t.Run("Introduction references the keyword", func(t *testing.T) {
		outline := FallbackOutline(domain.Keyword("gravel bikes"), nil, nil)

		require.NotEmpty(t, outline.Sections)
		assert.Contains(t, outline.Sections[0], "Introduction")
		assert.Contains(t, outline.Sections[0], "gravel bikes")
	})

	t.Run("Entities and keywords fill features and options", func(t *testing.T) {
		outline := FallbackOutline(domain.Keyword("gravel bikes"), sampleEntities(), sampleScored())

		rendered := outline.Render()
		assert.Contains(t, rendered, "- gravel:")
		assert.Contains(t, rendered, "- bikes:")
		assert.Contains(t, rendered, "- term1:")
		assert.Contains(t, rendered, "### term4")
	})

	t.Run("Placeholders pad missing signal", func(t *testing.T) {
		outline := FallbackOutline(domain.Keyword("gravel bikes"), sampleEntities()[:1], nil)

		rendered := outline.Render()
		assert.Contains(t, rendered, "Feature 2")
		assert.Contains(t, rendered, "Feature 3")
		assert.Contains(t, rendered, "Option 1")
		assert.Contains(t, rendered, "Analysis Point 1")
	})

	t.Run("Closing sections present", func(t *testing.T) {
		rendered := FallbackOutline(domain.Keyword("gravel bikes"), nil, nil).Render()

		assert.Contains(t, rendered, "## Buying Guide and Recommendations")
		assert.Contains(t, rendered, "## Expert Tips and Best Practices")
		assert.Contains(t, rendered, "## Conclusion")
	})
}

func TestOutlineGenerator(t *testing.T) {
	ctx := context.Background()
	keyword := domain.Keyword("gravel bikes")

	t.Run("Nil generator forces fallback", func(t *testing.T) {
		generator := NewOutlineGenerator(nil, OutlineOptions{}, nil)

		outline := generator.Generate(ctx, keyword, nil, nil)

		assert.Equal(t, "Gravel Bikes - Complete Guide 2025", outline.Title)
	})

	t.Run("Remote success is parsed into sections", func(t *testing.T) {
		stub := &stubGenerator{text: "# Gravel Bikes Field Guide\n\nA short intro.\n\n## Frame Materials\nSteel and carbon.\n\n## Tire Clearance\nWider is better."}
		generator := NewOutlineGenerator(stub, OutlineOptions{}, nil)

		outline := generator.Generate(ctx, keyword, sampleEntities(), sampleScored())

		require.Equal(t, 1, stub.calls)
		assert.Equal(t, "Gravel Bikes Field Guide", outline.Title)
		assert.Equal(t, "A short intro.", outline.Description)
		require.Len(t, outline.Sections, 2)
		assert.Equal(t, "Frame Materials\nSteel and carbon.", outline.Sections[0])
	})

	t.Run("Prompt carries entities and keywords", func(t *testing.T) {
		stub := &stubGenerator{text: "## Section\nBody."}
		generator := NewOutlineGenerator(stub, OutlineOptions{MaxTokens: 300, Temperature: 0.5}, nil)

		generator.Generate(ctx, keyword, sampleEntities(), sampleScored())

		assert.Contains(t, stub.last.Prompt, `"gravel bikes"`)
		assert.Contains(t, stub.last.Prompt, "gravel (TERM)")
		assert.Contains(t, stub.last.Prompt, "term1")
		assert.Equal(t, 300, stub.last.MaxTokens)
		assert.Equal(t, outlineSystemPrompt, stub.last.SystemPrompt)
	})

	t.Run("Remote error falls back", func(t *testing.T) {
		stub := &stubGenerator{err: fmt.Errorf("upstream unavailable")}
		generator := NewOutlineGenerator(stub, OutlineOptions{}, nil)

		outline := generator.Generate(ctx, keyword, nil, nil)

		assert.Equal(t, 1, stub.calls)
		assert.Equal(t, "Gravel Bikes - Complete Guide 2025", outline.Title)
		assert.False(t, outline.Empty())
	})

	t.Run("Unstructured remote text falls back", func(t *testing.T) {
		stub := &stubGenerator{text: "sorry, I cannot help with that"}
		generator := NewOutlineGenerator(stub, OutlineOptions{}, nil)

		outline := generator.Generate(ctx, keyword, nil, nil)

		assert.Contains(t, outline.Render(), "## Introduction")
	})

	t.Run("Slow remote call is bounded by the timeout", func(t *testing.T) {
		slow := &deadlineGenerator{}
		generator := NewOutlineGenerator(slow, OutlineOptions{Timeout: 10 * time.Millisecond}, nil)

		start := time.Now()
		outline := generator.Generate(ctx, keyword, nil, nil)

		assert.Less(t, time.Since(start), time.Second)
		assert.False(t, outline.Empty())
	})
}

// deadlineGenerator blocks until the request context expires.
type deadlineGenerator struct{}

func (deadlineGenerator) Generate(ctx context.Context, _ ports.GenerationRequest) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
