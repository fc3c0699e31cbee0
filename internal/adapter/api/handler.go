package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"movie-question-api/internal/domain/entity"
	"movie-question-api/internal/usecase"
)

type MovieHandler struct {
	orchestrator *usecase.Orchestrator
}

func NewMovieHandler(orch *usecase.Orchestrator) *MovieHandler {
	return &MovieHandler{orchestrator: orch}
}

// HandleHealth reports liveness only; it touches no collaborator, so it
// keeps answering while upstreams are down.
func (h *MovieHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *MovieHandler) HandleMovieQuestion(c *fiber.Ctx) error {
	var req entity.MovieQuestion
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid request body")
	}

	answer, err := h.orchestrator.AnswerMovieQuestion(c.Context(), c.IP(), req)
	if err != nil {
		return mapError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(answer)
}

func (h *MovieHandler) HandleGenerateImage(c *fiber.Ctx) error {
	var req entity.ImageRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid request body")
	}

	img, err := h.orchestrator.GenerateImage(c.Context(), c.IP(), req)
	if err != nil {
		return mapError(c, err)
	}

	c.Set(fiber.HeaderContentType, img.MIMEType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%s.%s", uuid.NewString(), extensionFor(img.MIMEType)))
	return c.Status(fiber.StatusOK).Send(img.Data)
}

// mapError converts domain errors to HTTP status codes; everything not
// recognized is treated as an upstream failure.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrRateLimitExceeded):
		return writeError(c, fiber.StatusTooManyRequests, err.Error())
	case errors.Is(err, entity.ErrMissingCredential):
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	default:
		return writeError(c, fiber.StatusBadGateway, err.Error())
	}
}

func writeError(c *fiber.Ctx, code int, detail string) error {
	return c.Status(code).JSON(entity.ErrorResponse{Status: "error", Detail: detail})
}

func extensionFor(mimeType string) string {
	if _, ext, ok := strings.Cut(mimeType, "/"); ok && ext != "" {
		return ext
	}
	return "png"
}
