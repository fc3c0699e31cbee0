package client

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"movie-question-api/internal/domain/entity"
)

// MockTextGenerator is the placeholder collaborator selected at startup when
// no text-provider credential is configured. The response is deterministic
// and echoes the question verbatim.
type MockTextGenerator struct{}

func (MockTextGenerator) Answer(_ context.Context, question string) (string, error) {
	return fmt.Sprintf("This is a mock response about your movie question: '%s'. Set SAMBANOVA_API_KEY to get real answers.", question), nil
}

// MockImageGenerator returns a 400x300 solid light-blue PNG placeholder.
type MockImageGenerator struct{}

func (MockImageGenerator) Generate(_ context.Context, _ string) (*entity.GeneratedImage, error) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	lightBlue := color.RGBA{R: 173, G: 216, B: 230, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: lightBlue}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &entity.GeneratedImage{Data: buf.Bytes(), MIMEType: "image/png"}, nil
}
