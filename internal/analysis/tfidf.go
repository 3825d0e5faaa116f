package analysis

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

// DefaultMaxFeatures caps the size of the scored-keyword list.
const DefaultMaxFeatures = 50

// TFIDFScorer computes classic TF-IDF over a document collection: lowercase,
// strip punctuation, build a unigram+bigram vocabulary minus stopwords,
// score term frequency times smoothed inverse document frequency summed
// across documents, drop zero scores, sort descending with first-seen order
// breaking ties.
type TFIDFScorer struct {
	maxFeatures int
}

var _ ports.KeywordScorer = (*TFIDFScorer)(nil)

// NewTFIDFScorer builds a scorer; maxFeatures defaults to 50.
func NewTFIDFScorer(maxFeatures int) *TFIDFScorer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &TFIDFScorer{maxFeatures: maxFeatures}
}

// Score returns the highest-weighted terms of the corpus. A degenerate
// corpus never aborts the pipeline: any panic inside scoring degrades to an
// empty result.
func (s *TFIDFScorer) Score(_ context.Context, documents []string, _ domain.Keyword) (scored []domain.ScoredKeyword, err error) {
	defer func() {
		if recover() != nil {
			scored, err = nil, nil
		}
	}()

	if len(documents) == 0 {
		return nil, nil
	}

	termDocs := make([]map[string]int, 0, len(documents))
	docFreq := map[string]int{}
	firstSeen := map[string]int{}

	for _, doc := range documents {
		counts := map[string]int{}
		for _, term := range vocabularyTerms(doc) {
			if _, ok := firstSeen[term]; !ok {
				firstSeen[term] = len(firstSeen)
			}
			counts[term]++
		}
		for term := range counts {
			docFreq[term]++
		}
		termDocs = append(termDocs, counts)
	}

	totalDocs := float64(len(documents))
	scores := map[string]float64{}
	for _, counts := range termDocs {
		for term, tf := range counts {
			idf := math.Log((1+totalDocs)/(1+float64(docFreq[term]))) + 1
			scores[term] += float64(tf) * idf
		}
	}

	for term, score := range scores {
		if score == 0 {
			continue
		}
		scored = append(scored, domain.ScoredKeyword{
			Term:      term,
			Score:     score,
			Frequency: int(math.Round(score * 100)),
		})
	}

	sortScoredKeywords(scored, firstSeen)

	if len(scored) > s.maxFeatures {
		scored = scored[:s.maxFeatures]
	}
	return scored, nil
}

// vocabularyTerms tokenizes one cleaned document into unigrams and bigrams,
// stopwords removed before n-gram assembly.
func vocabularyTerms(doc string) []string {
	tokens := tokenize(doc)

	filtered := tokens[:0]
	for _, token := range tokens {
		if len(token) < 2 || isStopword(token) {
			continue
		}
		filtered = append(filtered, token)
	}

	terms := make([]string, 0, 2*len(filtered))
	for i, token := range filtered {
		terms = append(terms, token)
		if i+1 < len(filtered) {
			terms = append(terms, token+" "+filtered[i+1])
		}
	}
	return terms
}

// tokenize lowercases the document and splits on anything that is not a
// letter or digit.
func tokenize(doc string) []string {
	return strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// sortScoredKeywords orders descending by score; ties keep corpus
// first-seen order.
func sortScoredKeywords(scored []domain.ScoredKeyword, firstSeen map[string]int) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return firstSeen[scored[i].Term] < firstSeen[scored[j].Term]
	})
}
