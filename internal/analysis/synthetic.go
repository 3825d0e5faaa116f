package analysis

import (
	"context"
	"math/rand"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// keywordSuffixes are the fixed variants appended to the keyword by the
// synthetic scorer.
var keywordSuffixes = []string{
	"guide", "tips", "strategies", "best practices", "examples", "tools", "case study",
}

// SyntheticScorer derives a deterministic keyword list without a statistical
// vectorizer: the keyword itself plus fixed suffix variants with
// monotonically decreasing scores. Frequencies are randomized but bounded;
// the random source is injected so tests can seed it.
type SyntheticScorer struct {
	rand *rand.Rand
}

var _ ports.KeywordScorer = (*SyntheticScorer)(nil)

// NewSyntheticScorer wires a seedable random source; a nil source falls back
// to a fixed seed.
func NewSyntheticScorer(rnd *rand.Rand) *SyntheticScorer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	return &SyntheticScorer{rand: rnd}
}

// Score ignores the documents and expands the keyword into scored variants.
func (s *SyntheticScorer) Score(_ context.Context, _ []string, keyword domain.Keyword) ([]domain.ScoredKeyword, error) {
	terms := make([]string, 0, len(keywordSuffixes)+1)
	terms = append(terms, keyword.String())
	for _, suffix := range keywordSuffixes {
		terms = append(terms, keyword.String()+" "+suffix)
	}

	scored := make([]domain.ScoredKeyword, 0, len(terms))
	for rank, term := range terms {
		score := 1.0 - 0.1*float64(rank)
		if score < 0 {
			score = 0.05
		}
		scored = append(scored, domain.ScoredKeyword{
			Term:      term,
			Score:     score,
			Frequency: 10 + s.rand.Intn(41),
		})
	}
	return scored, nil
}
