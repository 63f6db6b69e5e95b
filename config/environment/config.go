package environment

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Providers supported by the model client factory
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds everything read from the environment at startup.
// It is loaded once in main and read-only afterwards.
type Config struct {
	// GCP deployment settings
	GCPProjectID string
	GCPLocation  string
	GCPModelName string

	GeminiAPIKey string

	// Provider selection: "gemini" (default) or "openai"
	ModelProvider string

	OpenAIAPIKey    string
	OpenAIModelName string

	Port string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load reads the .env file (if present) and builds the Config.
// The API key for the selected provider is required.
func Load() (*Config, error) {
	// A missing .env file is fine; variables may come from the real environment
	_ = godotenv.Load()

	cfg := &Config{
		GCPProjectID:    os.Getenv("GCP_PROJECT_ID"),
		GCPLocation:     getEnvOrDefault("GCP_LOCATION", "us-central1"),
		GCPModelName:    getEnvOrDefault("GCP_MODEL_NAME", "gemini-1.5-pro"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		ModelProvider:   getEnvOrDefault("MODEL_PROVIDER", ProviderGemini),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModelName: getEnvOrDefault("OPENAI_MODEL_NAME", "gpt-4o"),
		Port:            getEnvOrDefault("PORT", "8080"),
	}

	switch cfg.ModelProvider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable is required but not set")
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable is required but not set")
		}
	default:
		return nil, errors.New("MODEL_PROVIDER must be \"gemini\" or \"openai\", got: " + cfg.ModelProvider)
	}

	return cfg, nil
}
