package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-question-api/internal/domain/entity"
)

type fakeTextGen struct {
	calls  int
	answer string
	err    error
}

func (f *fakeTextGen) Answer(ctx context.Context, question string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeImageGen struct {
	calls int
	img   *entity.GeneratedImage
	err   error
}

func (f *fakeImageGen) Generate(ctx context.Context, prompt string) (*entity.GeneratedImage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

type fakeLimiter struct {
	calls   int
	allowed bool
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.calls++
	return f.allowed, nil
}

func TestAnswerMovieQuestionRoundTrip(t *testing.T) {
	tg := &fakeTextGen{answer: "The Matrix is from 1999."}
	orch := NewOrchestrator(tg, &fakeImageGen{}, &fakeLimiter{allowed: true}, time.Second)

	question := "What is the best movie of 2023?"
	answer, err := orch.AnswerMovieQuestion(context.Background(), "10.0.0.1", entity.MovieQuestion{Question: question})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Status != "success" {
		t.Fatalf("status = %q, want success", answer.Status)
	}
	if answer.QuestionReceived != question {
		t.Fatalf("question_received = %q, want %q", answer.QuestionReceived, question)
	}
	if answer.ModelResponse != tg.answer {
		t.Fatalf("model_response = %q, want %q", answer.ModelResponse, tg.answer)
	}
	if _, err := time.Parse(time.RFC3339, answer.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", answer.Timestamp, err)
	}
	if tg.calls != 1 {
		t.Fatalf("text generator calls = %d, want 1", tg.calls)
	}
}

func TestAnswerMovieQuestionEmptyQuestion(t *testing.T) {
	tg := &fakeTextGen{answer: "unused"}
	limiter := &fakeLimiter{allowed: true}
	orch := NewOrchestrator(tg, &fakeImageGen{}, limiter, time.Second)

	for _, question := range []string{"", "   "} {
		_, err := orch.AnswerMovieQuestion(context.Background(), "10.0.0.1", entity.MovieQuestion{Question: question})
		if !errors.Is(err, entity.ErrInvalidRequest) {
			t.Fatalf("question %q: err = %v, want ErrInvalidRequest", question, err)
		}
	}
	if tg.calls != 0 {
		t.Fatalf("text generator called %d times for invalid input", tg.calls)
	}
	if limiter.calls != 0 {
		t.Fatalf("limiter called %d times for invalid input", limiter.calls)
	}
}

func TestAnswerMovieQuestionUpstreamFailure(t *testing.T) {
	tg := &fakeTextGen{err: errors.New("provider timeout")}
	orch := NewOrchestrator(tg, &fakeImageGen{}, &fakeLimiter{allowed: true}, time.Second)

	_, err := orch.AnswerMovieQuestion(context.Background(), "10.0.0.1", entity.MovieQuestion{Question: "anything"})
	if err == nil {
		t.Fatal("expected error from failing collaborator")
	}
	if errors.Is(err, entity.ErrInvalidRequest) {
		t.Fatalf("upstream failure misreported as validation error: %v", err)
	}
}

func TestAnswerMovieQuestionRateLimited(t *testing.T) {
	tg := &fakeTextGen{answer: "unused"}
	orch := NewOrchestrator(tg, &fakeImageGen{}, &fakeLimiter{allowed: false}, time.Second)

	_, err := orch.AnswerMovieQuestion(context.Background(), "10.0.0.1", entity.MovieQuestion{Question: "anything"})
	if !errors.Is(err, entity.ErrRateLimitExceeded) {
		t.Fatalf("err = %v, want ErrRateLimitExceeded", err)
	}
	if tg.calls != 0 {
		t.Fatalf("text generator called %d times while rate limited", tg.calls)
	}
}

func TestGenerateImageSuccess(t *testing.T) {
	ig := &fakeImageGen{img: &entity.GeneratedImage{Data: []byte{0x89, 0x50}, MIMEType: "image/png"}}
	orch := NewOrchestrator(&fakeTextGen{}, ig, &fakeLimiter{allowed: true}, time.Second)

	img, err := orch.GenerateImage(context.Background(), "10.0.0.1", entity.ImageRequest{Text: "a movie poster"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MIMEType != "image/png" {
		t.Fatalf("mime = %q, want image/png", img.MIMEType)
	}
	if len(img.Data) == 0 {
		t.Fatal("image data is empty")
	}
}

func TestGenerateImageEmptyText(t *testing.T) {
	ig := &fakeImageGen{}
	orch := NewOrchestrator(&fakeTextGen{}, ig, &fakeLimiter{allowed: true}, time.Second)

	_, err := orch.GenerateImage(context.Background(), "10.0.0.1", entity.ImageRequest{Text: ""})
	if !errors.Is(err, entity.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if ig.calls != 0 {
		t.Fatalf("image generator called %d times for invalid input", ig.calls)
	}
}

func TestGenerateImageUpstreamFailure(t *testing.T) {
	ig := &fakeImageGen{err: errors.New("quota exceeded")}
	orch := NewOrchestrator(&fakeTextGen{}, ig, &fakeLimiter{allowed: true}, time.Second)

	img, err := orch.GenerateImage(context.Background(), "10.0.0.1", entity.ImageRequest{Text: "a poster"})
	if err == nil {
		t.Fatal("expected error from failing collaborator")
	}
	if img != nil {
		t.Fatalf("got partial image on failure: %+v", img)
	}
}
