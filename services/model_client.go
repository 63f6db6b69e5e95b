package services

import (
	"context"
	"fmt"

	"ThreatLens/config/environment"
	"ThreatLens/models"
)

// Fixed generation parameters for the threat-model call. Not user-configurable.
const (
	generationTemperature = 0.7
	generationTopP        = 0.95
	generationMaxTokens   = 1500
)

// jsonOnlyReminder is appended after the image as the last content part
const jsonOnlyReminder = "Analyze the image and the text above and return ONLY the JSON described in the instructions."

// ModelClient is the interface every LLM provider implements.
// It lets the handler switch between hosted models without code changes.
type ModelClient interface {
	// GenerateThreatModel sends the prompt plus the diagram image to the
	// model and returns its raw text output
	GenerateThreatModel(ctx context.Context, prompt string, image models.ImagePart) (string, error)

	// GetName returns the provider name (for logging)
	GetName() string

	// GetModel returns the model in use
	GetModel() string
}

// NewModelClient builds the provider selected by the configuration
func NewModelClient(cfg *environment.Config) (ModelClient, error) {
	switch cfg.ModelProvider {
	case environment.ProviderGemini:
		return NewGeminiService(cfg), nil
	case environment.ProviderOpenAI:
		return NewOpenAIService(cfg), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %s", cfg.ModelProvider)
	}
}
