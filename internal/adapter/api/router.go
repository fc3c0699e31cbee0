package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRouter wires middleware and endpoints. The permissive CORS default
// exists for browser frontends during development; tighten it through
// CORS_ALLOW_ORIGINS when a real allow-list is known.
func SetupRouter(app *fiber.App, handler *MovieHandler, allowOrigins string) {
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
	}))

	app.Get("/health", handler.HandleHealth)
	app.Post("/ask-movie-question", handler.HandleMovieQuestion)
	app.Post("/generate-image", handler.HandleGenerateImage)
}
