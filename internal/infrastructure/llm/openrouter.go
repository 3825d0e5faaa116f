package llm

import (
	"context"
	"fmt"

	"github.com/revrost/go-openrouter"

	"SeoContentEngine/internal/ports"
)

// OpenRouterGenerator implements TextGenerator backed by the OpenRouter
// chat-completion API.
type OpenRouterGenerator struct {
	client *openrouter.Client
	model  string
}

var _ ports.TextGenerator = (*OpenRouterGenerator)(nil)

// NewOpenRouterGenerator builds a client from configuration. An empty API
// key yields a generator that fails fast on every call, which the outline
// tiering treats like any other remote failure.
func NewOpenRouterGenerator(apiKey, model string) *OpenRouterGenerator {
	gen := &OpenRouterGenerator{model: model}
	if apiKey != "" {
		gen.client = openrouter.NewClient(apiKey)
	}
	return gen
}

// Generate posts the prompt as a chat completion and returns the first
// choice.
func (g *OpenRouterGenerator) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	if g == nil || g.client == nil || g.model == "" {
		return "", fmt.Errorf("openrouter generator misconfigured")
	}

	request := openrouter.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{Text: req.SystemPrompt},
			},
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: req.Prompt},
			},
		},
	}

	response, err := g.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("create completion: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return response.Choices[0].Message.Content.Text, nil
}
