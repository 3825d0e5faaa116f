package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SerpRecord is one competitor result from a search engine results page.
type SerpRecord struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Snippet string   `json:"snippet"`
	H1      string   `json:"h1"`
	H2s     []string `json:"h2s"`
}

// EntityCategory is the controlled vocabulary for extracted entities.
type EntityCategory string

const (
	EntityPerson   EntityCategory = "PERSON"
	EntityOrg      EntityCategory = "ORG"
	EntityLocation EntityCategory = "LOCATION"
	EntityConcept  EntityCategory = "CONCEPT"
	EntityKeyword  EntityCategory = "KEYWORD"
	EntityTerm     EntityCategory = "TERM"
)

var categoryDisplay = map[EntityCategory]string{
	EntityPerson:   "Person",
	EntityOrg:      "Organization",
	EntityLocation: "Location",
	EntityConcept:  "Concept",
	EntityKeyword:  "Keyword",
	EntityTerm:     "Term",
}

// Display converts the category to a human-readable form.
func (c EntityCategory) Display() string {
	if name, ok := categoryDisplay[c]; ok {
		return name
	}
	lower := strings.ToLower(string(c))
	if lower == "" {
		return ""
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// Entity is a salient term identified in text. Start/End are character
// offsets into the span the entity was extracted from; both are -1 when the
// entity was derived synthetically rather than located in a concrete text.
type Entity struct {
	Text     string         `json:"text"`
	Category EntityCategory `json:"label"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
}

// ScoredKeyword is one term with its cumulative importance score. Frequency
// is a display-oriented proxy (score scaled to an integer), not a true
// occurrence count.
type ScoredKeyword struct {
	Term      string  `json:"term"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
}

// Importance bands the score for display.
func (s ScoredKeyword) Importance() string {
	switch {
	case s.Score >= 0.8:
		return "High"
	case s.Score >= 0.5:
		return "Medium"
	case s.Score >= 0.2:
		return "Low"
	default:
		return "Very Low"
	}
}

// ContentOutline is the structured skeleton of an article. Each section is a
// single string: heading on the first line, body lines after it. The
// structured form is authoritative; Render derives the markdown form.
type ContentOutline struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Sections           []string `json:"sections"`
	EstimatedWordCount int      `json:"estimated_word_count"`
}

// Empty reports whether the outline carries no usable content.
func (o ContentOutline) Empty() bool {
	return o.Title == "" && len(o.Sections) == 0
}

// Render produces the markdown form of the outline.
func (o ContentOutline) Render() string {
	var b strings.Builder
	if o.Title != "" {
		b.WriteString("# " + o.Title + "\n")
	}
	if o.Description != "" {
		b.WriteString("\n" + o.Description + "\n")
	}
	for _, section := range o.Sections {
		heading, body, found := strings.Cut(section, "\n")
		b.WriteString("\n## " + heading + "\n")
		if found && body != "" {
			b.WriteString(body + "\n")
		}
	}
	return b.String()
}

// SchemaThing is a nested schema.org Thing node.
type SchemaThing struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SchemaOrganization is a schema.org Organization node.
type SchemaOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// SchemaMarkup is JSON-LD metadata describing the generated content. It
// stays structured internally and is serialized only at the system boundary.
type SchemaMarkup struct {
	Context        string             `json:"@context"`
	Type           string             `json:"@type"`
	Headline       string             `json:"headline"`
	Description    string             `json:"description"`
	Keywords       string             `json:"keywords"`
	About          SchemaThing        `json:"about"`
	MainEntity     SchemaThing        `json:"mainEntity"`
	Author         SchemaOrganization `json:"author"`
	Publisher      SchemaOrganization `json:"publisher"`
	DatePublished  string             `json:"datePublished"`
	DateModified   string             `json:"dateModified"`
	ArticleSection string             `json:"articleSection"`
	InLanguage     string             `json:"inLanguage"`
}

// AnalysisStatus enumerates the two terminal states of a pipeline run.
type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// AnalysisResult aggregates everything one pipeline run produced. It is
// created once per run and never mutated after being returned; callers
// persist a copy.
type AnalysisResult struct {
	ID             uuid.UUID       `json:"id"`
	Keyword        Keyword         `json:"keyword"`
	SerpResults    []SerpRecord    `json:"serp_results"`
	Headings       []string        `json:"headings"`
	Entities       []Entity        `json:"entities"`
	ScoredKeywords []ScoredKeyword `json:"scored_keywords"`
	Outline        ContentOutline  `json:"outline"`
	Markup         SchemaMarkup    `json:"markup"`
	QualityScore   int             `json:"quality_score"`
	Status         AnalysisStatus  `json:"status"`
	Error          string          `json:"error,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
