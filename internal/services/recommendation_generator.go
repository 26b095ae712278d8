package services

import (
	"context"
	"errors"
	"fmt"

	"gastai/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("generator returned no choices")

const generatorSystemPrompt = "You are a personal finance assistant. " +
	"Answer only with the JSON the user asks for, no prose around it."

// OpenAIGenerator calls an OpenAI-compatible chat-completions endpoint. The
// base URL is configurable so the same client works against OpenRouter or any
// self-hosted gateway.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewOpenAIGenerator creates a generator from AI configuration
func NewOpenAIGenerator(cfg *config.AIConfig) RecommendationGeneratorInterface {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
	}
}

// Generate sends the prompt and returns the raw completion text. The caller
// owns the context deadline.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generatorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
