package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"ThreatLens/config/environment"
	"ThreatLens/models"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService is the OpenAI-compatible provider. It sends the diagram as
// a base64 data URI in a vision chat completion.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService creates a new instance of OpenAIService
func NewOpenAIService(cfg *environment.Config) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(cfg.OpenAIAPIKey),
		model:  cfg.OpenAIModelName,
	}
}

// GenerateThreatModel sends [prompt, image, reminder] as one multimodal
// user message and returns the completion text
func (s *OpenAIService) GenerateThreatModel(ctx context.Context, prompt string, image models.ImagePart) (string, error) {
	encodedImage := base64.StdEncoding.EncodeToString(image.Data)
	dataURI := "data:" + image.MimeType + ";base64," + encodedImage

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: generationTemperature,
		TopP:        generationTopP,
		MaxTokens:   generationMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataURI,
						},
					},
					{Type: openai.ChatMessagePartTypeText, Text: jsonOnlyReminder},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}

	return resp.Choices[0].Message.Content, nil
}

// GetName returns the provider name
func (s *OpenAIService) GetName() string {
	return environment.ProviderOpenAI
}

// GetModel returns the model in use
func (s *OpenAIService) GetModel() string {
	return s.model
}
