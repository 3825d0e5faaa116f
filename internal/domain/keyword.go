package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minKeywordLength = 2
	maxKeywordLength = 100
)

var keywordExpr = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// Keyword is a validated search keyword; the immutable input of an analysis run.
type Keyword string

// ParseKeyword trims and validates raw user input (2-100 chars, alphanumerics,
// spaces, hyphens, underscores).
func ParseKeyword(raw string) (Keyword, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < minKeywordLength {
		return "", fmt.Errorf("keyword %q is shorter than %d characters", trimmed, minKeywordLength)
	}
	if len(trimmed) > maxKeywordLength {
		return "", fmt.Errorf("keyword exceeds %d characters", maxKeywordLength)
	}
	if !keywordExpr.MatchString(trimmed) {
		return "", fmt.Errorf("keyword %q contains disallowed characters", trimmed)
	}
	return Keyword(trimmed), nil
}

func (k Keyword) String() string {
	return string(k)
}

// Tokens splits the keyword into its whitespace-separated parts.
func (k Keyword) Tokens() []string {
	return strings.Fields(string(k))
}

// Slug converts the keyword to a URL-safe path segment.
func (k Keyword) Slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(k))), " ", "-")
}

// Title renders the keyword with each token capitalized, for headlines.
func (k Keyword) Title() string {
	tokens := k.Tokens()
	for i, token := range tokens {
		tokens[i] = strings.ToUpper(token[:1]) + token[1:]
	}
	return strings.Join(tokens, " ")
}
