package analysis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeoContentEngine/internal/domain"
)

func TestSynthesizeMarkup(t *testing.T) {
	keyword := domain.Keyword("gravel bikes")
	published := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Fields templated from keyword and terms", func(t *testing.T) {
		markup := SynthesizeMarkup(keyword, sampleScored(), "SEO Content Generator", published)

		assert.Equal(t, "https://schema.org", markup.Context)
		assert.Equal(t, "Article", markup.Type)
		assert.Equal(t, "Best Gravel Bikes in 2025 - Complete Guide", markup.Headline)
		assert.Equal(t, "term1, term2, term3, term4, term5, term6", markup.Keywords)
		assert.Equal(t, "gravel bikes", markup.About.Name)
		assert.Equal(t, "SEO Content Generator", markup.Publisher.Name)
		assert.Equal(t, "2025-01-01", markup.DatePublished)
		assert.Equal(t, markup.DatePublished, markup.DateModified)
	})

	t.Run("Keywords capped at ten terms", func(t *testing.T) {
		var scored []domain.ScoredKeyword
		for i := 0; i < 15; i++ {
			scored = append(scored, domain.ScoredKeyword{Term: string(rune('a' + i))})
		}

		markup := SynthesizeMarkup(keyword, scored, "Publisher", published)

		assert.Equal(t, "a, b, c, d, e, f, g, h, i, j", markup.Keywords)
	})

	t.Run("Deterministic for identical inputs", func(t *testing.T) {
		first, err := json.Marshal(SynthesizeMarkup(keyword, sampleScored(), "Publisher", published))
		require.NoError(t, err)
		second, err := json.Marshal(SynthesizeMarkup(keyword, sampleScored(), "Publisher", published))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Round-trips through JSON", func(t *testing.T) {
		original := SynthesizeMarkup(keyword, sampleScored(), "Publisher", published)

		payload, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded domain.SchemaMarkup
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("JSON-LD keys present in serialized form", func(t *testing.T) {
		payload, err := json.Marshal(SynthesizeMarkup(keyword, nil, "Publisher", published))
		require.NoError(t, err)

		assert.Contains(t, string(payload), `"@context":"https://schema.org"`)
		assert.Contains(t, string(payload), `"@type":"Article"`)
		assert.Contains(t, string(payload), `"datePublished":"2025-01-01"`)
	})
}
