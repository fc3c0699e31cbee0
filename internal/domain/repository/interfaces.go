package repository

import (
	"context"

	"movie-question-api/internal/domain/entity"
)

// TextGenerator answers a movie question with natural-language text.
type TextGenerator interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ImageGenerator renders a text prompt into image bytes plus a MIME type.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*entity.GeneratedImage, error)
}

// ChatCompleter is a single chat-completion call against an
// OpenAI-compatible provider.
type ChatCompleter interface {
	Complete(ctx context.Context, model string, temperature float32, system, user string) (string, error)
}

// GraphStore exposes the movie graph to the question agent.
type GraphStore interface {
	// SchemaSummary returns a short textual description of node labels and
	// relationship types. Best effort; callers tolerate an error.
	SchemaSummary(ctx context.Context) (string, error)
	// Run executes a read-only Cypher query and returns its rows.
	Run(ctx context.Context, cypher string) ([]map[string]any, error)
}

// RequestLimiter gates requests per client key.
type RequestLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
