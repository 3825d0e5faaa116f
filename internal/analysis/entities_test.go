package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeoContentEngine/internal/domain"
)

func TestKeywordEntityExtractor(t *testing.T) {
	extractor := KeywordEntityExtractor{}

	t.Run("Tokens longer than three characters become terms", func(t *testing.T) {
		entities, err := extractor.Extract(context.Background(), "", domain.Keyword("best gravel bikes 2025"))

		require.NoError(t, err)

		byCategory := map[domain.EntityCategory][]string{}
		for _, entity := range entities {
			byCategory[entity.Category] = append(byCategory[entity.Category], entity.Text)
		}

		assert.Equal(t, []string{"best", "gravel", "bikes", "2025"}, byCategory[domain.EntityTerm])
		assert.Equal(t, []string{"best gravel bikes 2025"}, byCategory[domain.EntityKeyword])
		assert.Empty(t, byCategory[domain.EntityConcept])
	})

	t.Run("Short tokens skipped", func(t *testing.T) {
		entities, err := extractor.Extract(context.Background(), "", domain.Keyword("seo for dogs"))

		require.NoError(t, err)
		for _, entity := range entities {
			if entity.Category == domain.EntityTerm {
				assert.Greater(t, len(entity.Text), 3)
			}
		}
	})

	t.Run("Concept vocabulary matched case-insensitively", func(t *testing.T) {
		entities, err := extractor.Extract(context.Background(), "", domain.Keyword("Content Marketing Strategy"))

		require.NoError(t, err)

		var concepts []string
		for _, entity := range entities {
			if entity.Category == domain.EntityConcept {
				concepts = append(concepts, entity.Text)
			}
		}
		assert.ElementsMatch(t, []string{"marketing", "strategy", "content"}, concepts)
	})

	t.Run("No entity has empty text", func(t *testing.T) {
		entities, err := extractor.Extract(context.Background(), "", domain.Keyword("ab"))

		require.NoError(t, err)
		for _, entity := range entities {
			assert.NotEmpty(t, entity.Text)
		}
	})

	t.Run("Offsets point into the keyword", func(t *testing.T) {
		keyword := domain.Keyword("gravel bikes")
		entities, err := extractor.Extract(context.Background(), "", keyword)

		require.NoError(t, err)
		for _, entity := range entities {
			require.GreaterOrEqual(t, entity.Start, 0)
			require.LessOrEqual(t, entity.End, len(keyword.String()))
		}
	})
}
