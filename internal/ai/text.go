// Package ai talks to the generative model used for horoscopes, job
// comments and podcast scripts and voices.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/sashabaranov/go-openai"
)

// TextClient wraps the OpenAI-compatible chat endpoint.
type TextClient struct {
	client *openai.Client
	model  string
}

var _ contract.TextGenerator = (*TextClient)(nil)

// NewTextClient points the OpenAI client at baseURL, which may be any
// compatible endpoint such as Gemini's.
func NewTextClient(apiKey, baseURL, model string) *TextClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &TextClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *TextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
