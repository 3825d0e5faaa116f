package analysis

import "SeoContentEngine/internal/domain"

// QualityScore rates a completed analysis on an additive 0-100 rubric. Each
// band contributes its highest matching tier independently; the total is
// capped at 100.
func QualityScore(entityCount, keywordCount, serpCount, outlineLength int) int {
	score := 0

	switch {
	case entityCount >= 10:
		score += 30
	case entityCount >= 5:
		score += 20
	case entityCount >= 2:
		score += 10
	}

	switch {
	case keywordCount >= 20:
		score += 30
	case keywordCount >= 10:
		score += 20
	case keywordCount >= 5:
		score += 10
	}

	switch {
	case serpCount >= 8:
		score += 20
	case serpCount >= 5:
		score += 15
	case serpCount >= 2:
		score += 10
	}

	switch {
	case outlineLength > 500:
		score += 20
	case outlineLength > 200:
		score += 15
	case outlineLength > 50:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ScoreResult applies the rubric to an assembled analysis result.
func ScoreResult(result domain.AnalysisResult) int {
	return QualityScore(
		len(result.Entities),
		len(result.ScoredKeywords),
		len(result.SerpResults),
		len(result.Outline.Render()),
	)
}
