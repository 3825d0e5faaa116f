package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"SeoContentEngine/internal/domain"
	"SeoContentEngine/internal/ports"
)

const (
	outlineSystemPrompt = "You are an expert SEO content strategist."

	promptEntityLimit  = 5
	promptKeywordLimit = 10

	// Rough prose estimate per outline section, used for the word budget.
	wordsPerSection = 150
)

// OutlineGenerator produces a structured content outline with a two-tier
// strategy: a remote text-generation attempt first, then a deterministic
// local template that always succeeds. Remote failures of any kind never
// propagate past this type.
type OutlineGenerator struct {
	generator   ports.TextGenerator
	logger      *slog.Logger
	timeout     time.Duration
	maxTokens   int
	temperature float32
}

// OutlineOptions bounds the remote generation attempt.
type OutlineOptions struct {
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// NewOutlineGenerator wires the optional remote generator; pass nil to force
// the local fallback.
func NewOutlineGenerator(generator ports.TextGenerator, opts OutlineOptions, log *slog.Logger) *OutlineGenerator {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 500
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	return &OutlineGenerator{
		generator:   generator,
		logger:      log,
		timeout:     opts.Timeout,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
	}
}

// Generate never returns an empty outline: when the remote tier fails or is
// absent, the fallback skeleton still produces non-empty content.
func (g *OutlineGenerator) Generate(ctx context.Context, keyword domain.Keyword, entities []domain.Entity, scored []domain.ScoredKeyword) domain.ContentOutline {
	if g.generator != nil {
		if outline, ok := g.tryRemote(ctx, keyword, entities, scored); ok {
			return outline
		}
	}
	return FallbackOutline(keyword, entities, scored)
}

func (g *OutlineGenerator) tryRemote(ctx context.Context, keyword domain.Keyword, entities []domain.Entity, scored []domain.ScoredKeyword) (domain.ContentOutline, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.generator.Generate(ctx, ports.GenerationRequest{
		SystemPrompt: outlineSystemPrompt,
		Prompt:       buildOutlinePrompt(keyword, entities, scored),
		MaxTokens:    g.maxTokens,
		Temperature:  g.temperature,
	})
	if err != nil {
		g.warn("remote outline generation failed", "keyword", keyword.String(), "error", err)
		return domain.ContentOutline{}, false
	}

	outline := parseOutline(text, keyword)
	if outline.Empty() || len(outline.Sections) == 0 {
		g.warn("remote outline unusable, falling back", "keyword", keyword.String())
		return domain.ContentOutline{}, false
	}
	return outline, true
}

func buildOutlinePrompt(keyword domain.Keyword, entities []domain.Entity, scored []domain.ScoredKeyword) string {
	entityPairs := make([]string, 0, promptEntityLimit)
	for _, entity := range entities {
		if len(entityPairs) == promptEntityLimit {
			break
		}
		entityPairs = append(entityPairs, fmt.Sprintf("%s (%s)", entity.Text, entity.Category))
	}

	terms := make([]string, 0, promptKeywordLimit)
	for _, kw := range scored {
		if len(terms) == promptKeywordLimit {
			break
		}
		terms = append(terms, kw.Term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a comprehensive blog post outline for the keyword %q.\n\n", keyword.String())
	fmt.Fprintf(&b, "Use these extracted entities naturally: %s\n", strings.Join(entityPairs, ", "))
	fmt.Fprintf(&b, "Include these important keywords: %s\n\n", strings.Join(terms, ", "))
	b.WriteString("Format the outline with:\n")
	b.WriteString("- H2 headings for main sections\n")
	b.WriteString("- H3 subheadings for subsections\n")
	b.WriteString("- Brief description of what each section should cover\n\n")
	b.WriteString("Make it SEO-optimized and engaging for readers.")
	return b.String()
}

// parseOutline converts generated markdown-like text into the structured
// form: an optional "# " title, free text before the first "## " as the
// description, then one section per "## " heading.
func parseOutline(text string, keyword domain.Keyword) domain.ContentOutline {
	outline := domain.ContentOutline{
		Title: keyword.Title() + " - Complete Guide",
	}

	var (
		intro    []string
		sections []string
		current  []string
		inBody   bool
	)
	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.TrimSpace(strings.Join(current, "\n")))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "# ") && !inBody && len(current) == 0:
			outline.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			inBody = true
		case strings.HasPrefix(trimmed, "## "):
			flush()
			current = append(current, strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")))
			inBody = true
		case len(current) > 0:
			if trimmed != "" {
				current = append(current, trimmed)
			}
		case trimmed != "":
			intro = append(intro, trimmed)
			inBody = true
		}
	}
	flush()

	outline.Description = strings.Join(intro, " ")
	outline.Sections = sections
	outline.EstimatedWordCount = wordsPerSection * len(sections)
	return outline
}

// FallbackOutline synthesizes the fixed-structure outline locally. It is
// pure and always succeeds: missing entities and keywords are replaced by
// numbered placeholders.
func FallbackOutline(keyword domain.Keyword, entities []domain.Entity, scored []domain.ScoredKeyword) domain.ContentOutline {
	kw := keyword.String()

	features := placeholderTexts(entityTexts(entities), 3, "Feature")
	options := placeholderTexts(scoredTerms(scored), 3, "Option")
	points := placeholderTexts(skipTerms(scoredTerms(scored), 3), 2, "Analysis Point")

	sections := []string{
		fmt.Sprintf("Introduction\nOverview of %s and why it matters in 2025. This comprehensive guide covers everything you need to know about %s.", kw, kw),
		fmt.Sprintf("Key Features and Benefits\n- %s: Essential aspect of %s\n- %s: Important consideration for users\n- %s: Critical factor in decision making",
			features[0], kw, features[1], features[2]),
		fmt.Sprintf("Top Options and Comparisons\n- %s: Leading choice in the market\n- %s: Popular alternative with unique benefits\n- %s: Emerging option worth considering",
			options[0], options[1], options[2]),
		fmt.Sprintf("Detailed Analysis\n### %s\nDeep dive into this important aspect of %s.\n### %s\nUnderstanding the implications and benefits.",
			points[0], kw, points[1]),
		fmt.Sprintf("Buying Guide and Recommendations\nFactors to consider when choosing %s:\n- Quality and reliability\n- Price and value for money\n- User reviews and ratings\n- Long-term benefits", kw),
		"Expert Tips and Best Practices\n- Research thoroughly before making a decision\n- Compare multiple options\n- Consider your specific needs\n- Read user reviews and expert opinions",
		fmt.Sprintf("Conclusion\nSummary of key points and final recommendations for %s. Choose the option that best fits your requirements and budget.", kw),
		"Additional Resources\n- Related articles and guides\n- Expert recommendations\n- User community discussions\n- Latest updates and trends",
	}

	return domain.ContentOutline{
		Title:              keyword.Title() + " - Complete Guide 2025",
		Description:        fmt.Sprintf("Overview of %s and why it matters in 2025.", kw),
		Sections:           sections,
		EstimatedWordCount: wordsPerSection * len(sections),
	}
}

func entityTexts(entities []domain.Entity) []string {
	texts := make([]string, 0, len(entities))
	for _, entity := range entities {
		texts = append(texts, entity.Text)
	}
	return texts
}

func scoredTerms(scored []domain.ScoredKeyword) []string {
	terms := make([]string, 0, len(scored))
	for _, kw := range scored {
		terms = append(terms, kw.Term)
	}
	return terms
}

func skipTerms(terms []string, n int) []string {
	if len(terms) <= n {
		return nil
	}
	return terms[n:]
}

// placeholderTexts returns exactly n values, padding with "prefix N".
func placeholderTexts(values []string, n int, prefix string) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(values) && values[i] != "" {
			out = append(out, values[i])
			continue
		}
		out = append(out, fmt.Sprintf("%s %d", prefix, i+1))
	}
	return out
}

func (g *OutlineGenerator) warn(msg string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Warn(msg, args...)
	}
}
