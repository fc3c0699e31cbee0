package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Neo4jConfig holds graph database connection settings.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// Config holds all configuration for the application. It is loaded once at
// startup and passed to constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Port             string
	CORSAllowOrigins string

	SambaNovaAPIKey  string
	SambaNovaBaseURL string
	ModelFast        string
	ModelPrimary     string

	GoogleAPIKey string
	ImageModel   string

	Neo4j Neo4jConfig

	RedisAddr  string
	RateLimit  int
	RateWindow time.Duration

	UpstreamTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults for
// optional values. Missing provider credentials are not an error here: the
// caller selects mock collaborators instead.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8000"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),

		SambaNovaAPIKey:  os.Getenv("SAMBANOVA_API_KEY"),
		SambaNovaBaseURL: getEnv("SAMBANOVA_BASE_URL", "https://api.sambanova.ai/v1"),
		ModelFast:        getEnv("MODEL_FAST", "Meta-Llama-3.3-70B-Instruct"),
		ModelPrimary:     getEnv("MODEL", "DeepSeek-V3.1"),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		ImageModel:   getEnv("IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),

		Neo4j: Neo4jConfig{
			URI:      os.Getenv("NEO4J_URI"),
			Username: os.Getenv("NEO4J_USERNAME"),
			Password: os.Getenv("NEO4J_PASSWORD"),
		},

		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RateLimit:  getEnvInt("RATE_LIMIT", 60),
		RateWindow: time.Duration(getEnvInt("RATE_WINDOW", 60)) * time.Second,

		UpstreamTimeout: time.Duration(getEnvInt("UPSTREAM_TIMEOUT", 30)) * time.Second,
	}

	return cfg
}

// HasTextProvider reports whether the text-generation collaborator can be
// used instead of the mock.
func (c *Config) HasTextProvider() bool {
	return c.SambaNovaAPIKey != ""
}

// HasImageProvider reports whether the image-generation collaborator can be
// used instead of the mock.
func (c *Config) HasImageProvider() bool {
	return c.GoogleAPIKey != ""
}

// HasGraph reports whether all Neo4j credentials are present.
func (c *Config) HasGraph() bool {
	return c.Neo4j.URI != "" && c.Neo4j.Username != "" && c.Neo4j.Password != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
