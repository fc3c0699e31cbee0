package client

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
)

func TestMockTextGeneratorEchoesQuestion(t *testing.T) {
	question := "Who directed Alien?"

	first, err := MockTextGenerator{}.Answer(context.Background(), question)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(first, question) {
		t.Fatalf("mock response does not echo the question: %q", first)
	}

	second, _ := MockTextGenerator{}.Answer(context.Background(), question)
	if first != second {
		t.Fatal("mock response is not deterministic")
	}
}

func TestMockImageGeneratorReturnsPNG(t *testing.T) {
	img, err := MockImageGenerator{}.Generate(context.Background(), "a movie poster")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MIMEType != "image/png" {
		t.Fatalf("mime = %q, want image/png", img.MIMEType)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("data is not a valid PNG: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Fatalf("placeholder size = %dx%d, want 400x300", cfg.Width, cfg.Height)
	}
}
