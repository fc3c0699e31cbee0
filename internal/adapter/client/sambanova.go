package client

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// SambaNovaClient talks to the SambaNova OpenAI-compatible chat-completions
// endpoint. One call, no retries; retry policy belongs to the provider side.
type SambaNovaClient struct {
	client *openai.Client
}

func NewSambaNovaClient(apiKey, baseURL string) *SambaNovaClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &SambaNovaClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *SambaNovaClient) Complete(ctx context.Context, model string, temperature float32, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
