package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"ThreatLens/logging"
	"ThreatLens/models"
)

// ThreatService handles threat-model analysis with the configured model client
type ThreatService struct {
	Model ModelClient
}

// NewThreatService initializes ThreatService
func NewThreatService(model ModelClient) *ThreatService {
	return &ThreatService{
		Model: model,
	}
}

// AnalyzeThreats builds the STRIDE prompt, calls the model and interprets
// its output. The returned value is either the model's JSON parsed verbatim
// or a models.RawTextResponse when the output is not valid JSON. Only a
// failed model call is an error.
func (s *ThreatService) AnalyzeThreats(ctx context.Context, input models.ThreatAnalysisInput) (interface{}, error) {
	log := logging.GetLogger()

	prompt := BuildThreatModelPrompt(
		input.ApplicationType,
		input.AuthenticationMethods,
		input.InternetExposed,
		input.SensitiveData,
		input.ApplicationDescription,
		input.PromptLanguage,
	)

	log.Infof("Requesting threat model from %s (%s)", s.Model.GetName(), s.Model.GetModel())

	text, err := s.Model.GenerateThreatModel(ctx, prompt, input.Image)
	if err != nil {
		log.Errorf("Model call failed: %v", err)
		return nil, err
	}

	return interpretModelOutput(text), nil
}

// interpretModelOutput strict-parses the model text as JSON. Models often
// wrap the JSON in markdown fences despite the instructions, so fences are
// stripped before parsing. On parse failure the original text is passed
// through untouched.
func interpretModelOutput(text string) interface{} {
	cleaned := cleanJSONResponse(text)

	var parsed interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.RawTextResponse{RawText: text}
	}
	return parsed
}

func cleanJSONResponse(response string) string {
	// Remove markdown code block markers like ```json and ```
	re := regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	cleaned := re.ReplaceAllString(response, "$1")

	// Trim unnecessary whitespace
	return strings.TrimSpace(cleaned)
}
