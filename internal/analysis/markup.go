package analysis

import (
	"fmt"
	"strings"
	"time"

	"SeoContentEngine/internal/domain"
)

const markupKeywordLimit = 10

// SynthesizeMarkup builds JSON-LD article metadata from the keyword and the
// top scored terms. It is deterministic and purely local: the publish date
// is injected by the caller instead of read from the wall clock, so
// identical inputs always produce identical markup.
func SynthesizeMarkup(keyword domain.Keyword, scored []domain.ScoredKeyword, publisher string, published time.Time) domain.SchemaMarkup {
	terms := scoredTerms(scored)
	if len(terms) > markupKeywordLimit {
		terms = terms[:markupKeywordLimit]
	}

	kw := keyword.String()
	date := published.Format("2006-01-02")

	return domain.SchemaMarkup{
		Context:     "https://schema.org",
		Type:        "Article",
		Headline:    fmt.Sprintf("Best %s in 2025 - Complete Guide", keyword.Title()),
		Description: fmt.Sprintf("Comprehensive guide to %s options, features, and buying advice for 2025.", kw),
		Keywords:    strings.Join(terms, ", "),
		About: domain.SchemaThing{
			Type: "Thing",
			Name: kw,
		},
		MainEntity: domain.SchemaThing{
			Type:        "Thing",
			Name:        kw,
			Description: fmt.Sprintf("Complete analysis of %s options and features", kw),
		},
		Author:         domain.SchemaOrganization{Type: "Organization", Name: publisher},
		Publisher:      domain.SchemaOrganization{Type: "Organization", Name: publisher},
		DatePublished:  date,
		DateModified:   date,
		ArticleSection: "Technology",
		InLanguage:     "en-US",
	}
}
