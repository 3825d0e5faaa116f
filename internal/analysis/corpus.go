package analysis

import (
	"strings"

	"SeoContentEngine/internal/domain"
)

// BuildCorpus flattens SERP records into the text corpus used downstream:
// one document per record (title, snippet and h1 whitespace-joined, no
// further normalization) plus the flattened h2 headings across all records,
// order preserved. Empty input yields empty output.
func BuildCorpus(records []domain.SerpRecord) (documents []string, headings []string) {
	for _, record := range records {
		documents = append(documents, strings.Join([]string{record.Title, record.Snippet, record.H1}, " "))
		headings = append(headings, record.H2s...)
	}
	return documents, headings
}
