package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeoContentEngine/internal/serp"
)

func TestSyntheticProvider(t *testing.T) {
	p := NewSyntheticProvider()
	ctx := context.Background()

	t.Run("Exactly the requested count", func(t *testing.T) {
		for _, count := range []int{1, 2, 5, 10} {
			records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: count})

			require.NoError(t, err)
			assert.Len(t, records, count)
		}
	})

	t.Run("Zero count yields nothing", func(t *testing.T) {
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 0})

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Every record references the keyword", func(t *testing.T) {
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 8})

		require.NoError(t, err)
		for _, record := range records {
			assert.Contains(t, record.Title, "gravel bikes")
			assert.Contains(t, record.Snippet, "gravel bikes")
			assert.Contains(t, record.H1, "gravel bikes")
			assert.NotEmpty(t, record.H2s)
			assert.True(t, strings.HasPrefix(record.URL, "https://"))
		}
	})

	t.Run("Deterministic for identical input", func(t *testing.T) {
		first, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 7})
		require.NoError(t, err)
		second, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 7})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("URLs slugified from the keyword", func(t *testing.T) {
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 3})

		require.NoError(t, err)
		assert.Equal(t, "https://example1.com/gravel-bikes", records[0].URL)
		assert.Equal(t, "https://example3.com/gravel-bikes", records[2].URL)
	})
}
