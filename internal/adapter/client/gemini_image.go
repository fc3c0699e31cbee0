package client

import (
	"context"

	"google.golang.org/genai"

	"movie-question-api/internal/domain/entity"
)

// GeminiImageClient renders text prompts through the Gemini image
// generation preview model.
type GeminiImageClient struct {
	client *genai.Client
	model  string
}

func NewGeminiImageClient(ctx context.Context, apiKey, model string) (*GeminiImageClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiImageClient{client: client, model: model}, nil
}

func NewGeminiImageClientFromClient(c *genai.Client, model string) *GeminiImageClient {
	return &GeminiImageClient{
		client: c,
		model:  model,
	}
}

func (g *GeminiImageClient) Generate(ctx context.Context, prompt string) (*entity.GeneratedImage, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		})
	if err != nil {
		return nil, err
	}

	// The response may carry several parts; the first inline image wins.
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return &entity.GeneratedImage{Data: part.InlineData.Data, MIMEType: mime}, nil
		}
	}

	return nil, entity.ErrNoImageData
}
