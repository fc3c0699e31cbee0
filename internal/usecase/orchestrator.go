package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-question-api/internal/domain/entity"
	"movie-question-api/internal/domain/repository"
)

// Orchestrator validates requests, applies the request limiter, and
// delegates to the configured collaborators. It holds no mutable state, so
// concurrent requests need no coordination.
type Orchestrator struct {
	textGen  repository.TextGenerator
	imageGen repository.ImageGenerator
	limiter  repository.RequestLimiter
	timeout  time.Duration
}

func NewOrchestrator(tg repository.TextGenerator, ig repository.ImageGenerator, rl repository.RequestLimiter, timeout time.Duration) *Orchestrator {
	return &Orchestrator{textGen: tg, imageGen: ig, limiter: rl, timeout: timeout}
}

// AnswerMovieQuestion runs one synchronous question/answer cycle. Validation
// happens before any collaborator call; a failed collaborator call is
// surfaced to the caller unretried.
func (u *Orchestrator) AnswerMovieQuestion(ctx context.Context, clientKey string, req entity.MovieQuestion) (*entity.MovieAnswer, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, entity.ErrInvalidRequest
	}

	allowed, err := u.limiter.Allow(ctx, clientKey)
	if err != nil {
		return nil, fmt.Errorf("rate limiter check failed: %w", err)
	}
	if !allowed {
		return nil, entity.ErrRateLimitExceeded
	}

	genCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := u.textGen.Answer(genCtx, req.Question)
	if err != nil {
		return nil, fmt.Errorf("text generation failed: %w", err)
	}

	return &entity.MovieAnswer{
		ModelResponse:    text,
		Status:           "success",
		QuestionReceived: req.Question,
		Timestamp:        time.Now().Format(time.RFC3339),
	}, nil
}

// GenerateImage renders the prompt through the image collaborator. No
// partial image is ever returned: any failure propagates as an error.
func (u *Orchestrator) GenerateImage(ctx context.Context, clientKey string, req entity.ImageRequest) (*entity.GeneratedImage, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, entity.ErrInvalidRequest
	}

	allowed, err := u.limiter.Allow(ctx, clientKey)
	if err != nil {
		return nil, fmt.Errorf("rate limiter check failed: %w", err)
	}
	if !allowed {
		return nil, entity.ErrRateLimitExceeded
	}

	genCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	img, err := u.imageGen.Generate(genCtx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	return img, nil
}
