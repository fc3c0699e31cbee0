package main

import (
	"context"
	"log"

	"movie-question-api/internal/adapter/api"
	"movie-question-api/internal/adapter/client"
	"movie-question-api/internal/adapter/graph"
	"movie-question-api/internal/adapter/store"
	"movie-question-api/internal/config"
	"movie-question-api/internal/domain/repository"
	"movie-question-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Text generation: graph-grounded agent when a provider key is present,
	// deterministic placeholder otherwise.
	var textGen repository.TextGenerator = client.MockTextGenerator{}
	if cfg.HasTextProvider() {
		var graphStore repository.GraphStore
		if cfg.HasGraph() {
			neoStore, err := graph.NewNeo4jStore(cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password)
			if err != nil {
				log.Fatalf("failed to connect to neo4j: %v", err)
			}
			defer neoStore.Close(ctx)
			graphStore = neoStore
		} else {
			log.Println("Neo4j credentials not set, answering without graph context")
		}

		chat := client.NewSambaNovaClient(cfg.SambaNovaAPIKey, cfg.SambaNovaBaseURL)
		textGen = usecase.NewGraphAgent(chat, graphStore, cfg.ModelFast, cfg.ModelPrimary)
	} else {
		log.Println("SAMBANOVA_API_KEY not set, using mock text generator")
	}

	// Image generation: Gemini when a key is present, placeholder PNG otherwise.
	var imageGen repository.ImageGenerator = client.MockImageGenerator{}
	if cfg.HasImageProvider() {
		geminiClient, err := client.NewGeminiImageClient(ctx, cfg.GoogleAPIKey, cfg.ImageModel)
		if err != nil {
			log.Fatalf("failed to init genai client: %v", err)
		}
		imageGen = geminiClient
	} else {
		log.Println("GOOGLE_API_KEY not set, using mock image generator")
	}

	// Redis for request limiting, when configured.
	var limiter repository.RequestLimiter = store.NoopLimiter{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		limiter = store.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow)
	}

	orchestrator := usecase.NewOrchestrator(textGen, imageGen, limiter, cfg.UpstreamTimeout)

	app := fiber.New(fiber.Config{
		AppName: "Movie Question API",
	})

	handler := api.NewMovieHandler(orchestrator)
	api.SetupRouter(app, handler, cfg.CORSAllowOrigins)

	log.Printf("Movie Question API running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
