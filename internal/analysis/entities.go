package analysis

import (
	"context"
	"strings"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// conceptVocabulary is the fixed set of domain terms recognized as CONCEPT
// entities when they appear inside the keyword.
var conceptVocabulary = []string{"seo", "marketing", "strategy", "optimization", "content"}

// KeywordEntityExtractor derives entities from the keyword itself, with no
// model dependency: tokens longer than three characters become TERM
// entities, the whole keyword becomes a KEYWORD entity, and a small fixed
// vocabulary of domain terms is matched case-insensitively as CONCEPT
// entities. Offsets refer to positions inside the keyword string.
type KeywordEntityExtractor struct{}

var _ ports.EntityExtractor = KeywordEntityExtractor{}

// Extract ignores the corpus and decomposes the keyword.
func (KeywordEntityExtractor) Extract(_ context.Context, _ string, keyword domain.Keyword) ([]domain.Entity, error) {
	kw := keyword.String()
	lower := strings.ToLower(kw)

	var entities []domain.Entity
	seen := map[string]struct{}{}
	add := func(text string, category domain.EntityCategory, start int) {
		if text == "" {
			return
		}
		key := strings.ToLower(text) + "/" + string(category)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		entities = append(entities, domain.Entity{
			Text:     text,
			Category: category,
			Start:    start,
			End:      start + len(text),
		})
	}

	offset := 0
	for _, token := range keyword.Tokens() {
		start := strings.Index(kw[offset:], token) + offset
		offset = start + len(token)
		if len(token) > 3 {
			add(token, domain.EntityTerm, start)
		}
	}

	add(kw, domain.EntityKeyword, 0)

	for _, concept := range conceptVocabulary {
		if idx := strings.Index(lower, concept); idx >= 0 {
			add(concept, domain.EntityConcept, idx)
		}
	}

	return entities, nil
}
