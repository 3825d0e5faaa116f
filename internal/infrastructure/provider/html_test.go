package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeoContentEngine/internal/serp"
)

const serpPage = `
<html><body id="main">
  <article class="result">
    <h3><a href="https://bikes.example/gravel">Best Gravel Bikes 2025</a></h3>
    <p class="content">Our pick of gravel bikes for every budget.</p>
    <div class="sitelinks">
      <a href="#frames">Frames</a>
      <a href="#tires">Tires</a>
    </div>
  </article>
  <article class="result">
    <h3><a href="https://cycling.example/guide">Gravel Bike Buying Guide</a></h3>
    <p class="content">What to look for in a gravel bike.</p>
  </article>
  <article class="result">
    <h3><a href="https://third.example/entry">Third Entry</a></h3>
    <p class="content">Filler.</p>
  </article>
</body></html>`

func TestHTMLProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses results page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "gravel bikes", r.URL.Query().Get("q"))
			assert.Equal(t, "5", r.URL.Query().Get("num"))
			_, _ = w.Write([]byte(serpPage))
		}))
		defer server.Close()

		p := NewHTMLProvider(server.URL, server.Client(), nil)
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 5})

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Best Gravel Bikes 2025", records[0].Title)
		assert.Equal(t, "https://bikes.example/gravel", records[0].URL)
		assert.Equal(t, "Our pick of gravel bikes for every budget.", records[0].Snippet)
		assert.Equal(t, records[0].Title, records[0].H1)
		assert.Equal(t, []string{"Frames", "Tires"}, records[0].H2s)
		assert.Empty(t, records[1].H2s)
	})

	t.Run("Count limits parsed records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(serpPage))
		}))
		defer server.Close()

		p := NewHTMLProvider(server.URL, server.Client(), nil)
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 2})

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Upstream error degrades to empty, not failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		p := NewHTMLProvider(server.URL, server.Client(), nil)
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 5})

		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Unreachable endpoint degrades to empty", func(t *testing.T) {
		p := NewHTMLProvider("http://127.0.0.1:1/search", nil, nil)
		records, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 5})

		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Invalid endpoint is a configuration error", func(t *testing.T) {
		p := NewHTMLProvider("://missing-scheme", nil, nil)
		_, err := p.Fetch(ctx, serp.Request{Keyword: "gravel bikes", Count: 5})

		assert.Error(t, err)
	})
}
