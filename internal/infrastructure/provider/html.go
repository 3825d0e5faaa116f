package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/serp"
)

// HTMLProvider fetches a self-hosted results page (SearxNG-style markup) and
// parses it into competitor records. When the upstream misbehaves it returns
// an empty record list instead of an error; the orchestrator treats an empty
// SERP as pipeline failure without needing a special case for transport
// problems.
type HTMLProvider struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

var _ serp.Provider = (*HTMLProvider)(nil)

// NewHTMLProvider wires an HTTP client; timeout defaults to 15s.
func NewHTMLProvider(endpoint string, client *http.Client, log *slog.Logger) *HTMLProvider {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTMLProvider{endpoint: endpoint, client: client, logger: log}
}

// Name identifies the strategy inside the registry.
func (p *HTMLProvider) Name() string {
	return "html"
}

// Fetch queries the results endpoint and extracts up to req.Count records.
func (p *HTMLProvider) Fetch(ctx context.Context, req serp.Request) ([]domain.SerpRecord, error) {
	pageURL, err := p.buildQueryURL(req)
	if err != nil {
		return nil, err
	}

	doc, err := p.fetchDocument(ctx, pageURL)
	if err != nil {
		p.warn("serp page unavailable", "url", pageURL, "error", err)
		return nil, nil
	}

	records := extractRecords(doc, req.Count)
	if len(records) == 0 {
		p.warn("serp page yielded no results", "url", pageURL)
	}
	return records, nil
}

func (p *HTMLProvider) buildQueryURL(req serp.Request) (string, error) {
	parsed, err := url.Parse(p.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid serp endpoint %s: %w", p.endpoint, err)
	}

	query := parsed.Query()
	query.Set("q", req.Keyword.String())
	query.Set("num", strconv.Itoa(req.Count))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (p *HTMLProvider) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "SeoContentEngine/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serp endpoint returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func extractRecords(doc *goquery.Document, limit int) []domain.SerpRecord {
	var records []domain.SerpRecord

	doc.Find("article.result, div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("h3 a").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return true
		}
		href, _ := link.Attr("href")

		snippet := strings.TrimSpace(sel.Find("p.content, .snippet").First().Text())

		var headings []string
		sel.Find(".sitelinks a").Each(func(_ int, sub *goquery.Selection) {
			if text := strings.TrimSpace(sub.Text()); text != "" {
				headings = append(headings, text)
			}
		})

		records = append(records, domain.SerpRecord{
			Title:   title,
			URL:     href,
			Snippet: snippet,
			H1:      title,
			H2s:     headings,
		})
		return len(records) < limit
	})

	return records
}

func (p *HTMLProvider) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
